package netarc

// Equality and ordering between archived and owned forms always decode the
// archived side to its canonical owned value first. Raw byte comparison
// would leak representation artifacts (segment byte-order normalization,
// the discriminant cell) into domain semantics.

func (a *ArchivedIPv4Addr) EqualAddr(o IPv4Addr) bool {
	return a.Unarchive() == o
}

func (a *ArchivedIPv4Addr) CompareAddr(o IPv4Addr) int {
	return a.Unarchive().Compare(o)
}

func (a *ArchivedIPv4Addr) Compare(o *ArchivedIPv4Addr) int {
	return a.Unarchive().Compare(o.Unarchive())
}

func (a IPv4Addr) EqualArchived(o *ArchivedIPv4Addr) bool {
	return o.EqualAddr(a)
}

func (a IPv4Addr) CompareArchived(o *ArchivedIPv4Addr) int {
	return -o.CompareAddr(a)
}

func (a *ArchivedIPv6Addr) EqualAddr(o IPv6Addr) bool {
	return a.Unarchive() == o
}

func (a *ArchivedIPv6Addr) CompareAddr(o IPv6Addr) int {
	return a.Unarchive().Compare(o)
}

func (a *ArchivedIPv6Addr) Compare(o *ArchivedIPv6Addr) int {
	return a.Unarchive().Compare(o.Unarchive())
}

func (a IPv6Addr) EqualArchived(o *ArchivedIPv6Addr) bool {
	return o.EqualAddr(a)
}

func (a IPv6Addr) CompareArchived(o *ArchivedIPv6Addr) int {
	return -o.CompareAddr(a)
}

func (a *ArchivedIPAddr) EqualAddr(o IPAddr) bool {
	return a.Unarchive() == o
}

func (a *ArchivedIPAddr) CompareAddr(o IPAddr) int {
	return a.Unarchive().Compare(o)
}

func (a *ArchivedIPAddr) Compare(o *ArchivedIPAddr) int {
	return a.Unarchive().Compare(o.Unarchive())
}

func (a IPAddr) EqualArchived(o *ArchivedIPAddr) bool {
	return o.EqualAddr(a)
}

func (a IPAddr) CompareArchived(o *ArchivedIPAddr) int {
	return -o.CompareAddr(a)
}

func (a *ArchivedSockAddrV4) EqualAddr(o SockAddrV4) bool {
	return a.Unarchive() == o
}

func (a *ArchivedSockAddrV4) CompareAddr(o SockAddrV4) int {
	return a.Unarchive().Compare(o)
}

func (a *ArchivedSockAddrV4) Compare(o *ArchivedSockAddrV4) int {
	return a.Unarchive().Compare(o.Unarchive())
}

func (s SockAddrV4) EqualArchived(o *ArchivedSockAddrV4) bool {
	return o.EqualAddr(s)
}

func (s SockAddrV4) CompareArchived(o *ArchivedSockAddrV4) int {
	return -o.CompareAddr(s)
}

func (a *ArchivedSockAddrV6) EqualAddr(o SockAddrV6) bool {
	return a.Unarchive() == o
}

func (a *ArchivedSockAddrV6) CompareAddr(o SockAddrV6) int {
	return a.Unarchive().Compare(o)
}

func (a *ArchivedSockAddrV6) Compare(o *ArchivedSockAddrV6) int {
	return a.Unarchive().Compare(o.Unarchive())
}

func (s SockAddrV6) EqualArchived(o *ArchivedSockAddrV6) bool {
	return o.EqualAddr(s)
}

func (s SockAddrV6) CompareArchived(o *ArchivedSockAddrV6) int {
	return -o.CompareAddr(s)
}

func (a *ArchivedSockAddr) EqualAddr(o SockAddr) bool {
	return a.Unarchive() == o
}

func (a *ArchivedSockAddr) CompareAddr(o SockAddr) int {
	return a.Unarchive().Compare(o)
}

func (a *ArchivedSockAddr) Compare(o *ArchivedSockAddr) int {
	return a.Unarchive().Compare(o.Unarchive())
}

func (s SockAddr) EqualArchived(o *ArchivedSockAddr) bool {
	return o.EqualAddr(s)
}

func (s SockAddr) CompareArchived(o *ArchivedSockAddr) int {
	return -o.CompareAddr(s)
}
