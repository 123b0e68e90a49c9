package machineid

import (
	"net"
	"strings"
)

// Candidate is a network interface considered for the machine id.
type Candidate struct {
	Name         string
	HardwareAddr net.HardwareAddr
	// Addr is the first address bound to the interface.
	Addr    net.IP
	Virtual bool
}

// Lister enumerates candidates.
type Lister func() ([]Candidate, error)

// SystemInterfaces lists the host's non-loopback interfaces that have at
// least one address. Alias interfaces such as "eth0:1" are marked virtual.
func SystemInterfaces() ([]Candidate, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(ifaces))
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil || len(addrs) == 0 {
			continue
		}
		ip := addrIP(addrs[0])
		if ip == nil || ip.IsLoopback() {
			continue
		}
		candidates = append(candidates, Candidate{
			Name:         iface.Name,
			HardwareAddr: iface.HardwareAddr,
			Addr:         ip,
			Virtual:      strings.Contains(iface.Name, ":"),
		})
	}
	return candidates, nil
}

func addrIP(addr net.Addr) net.IP {
	switch a := addr.(type) {
	case *net.IPNet:
		return a.IP
	case *net.IPAddr:
		return a.IP
	}
	return nil
}

// Best returns the preferred candidate, skipping virtual interfaces and
// unacceptable hardware addresses.
func Best(candidates []Candidate) (Candidate, bool) {
	var (
		best  Candidate
		found bool
	)
	for _, c := range candidates {
		if c.Virtual || !Acceptable(c.HardwareAddr) {
			continue
		}
		if !found || Prefer(c, best) {
			best, found = c, true
		}
	}
	return best, found
}

// Acceptable reports whether mac can serve as a machine id: at least six
// bytes, not multicast, and not made only of 0x00 and 0x01 bytes.
func Acceptable(mac net.HardwareAddr) bool {
	if len(mac) < Size {
		return false
	}
	if mac[0]&0x01 != 0 {
		return false
	}
	for _, b := range mac {
		if b != 0x00 && b != 0x01 {
			return true
		}
	}
	return false
}

// Prefer reports whether candidate beats current. Globally unique
// addresses win over locally administered ones, then the interface
// address with the higher AddressScore, then the longer hardware address.
func Prefer(candidate, current Candidate) bool {
	cu := candidate.HardwareAddr[0]&0x02 == 0
	bu := current.HardwareAddr[0]&0x02 == 0
	if cu != bu {
		return cu
	}
	if cs, bs := AddressScore(candidate.Addr), AddressScore(current.Addr); cs != bs {
		return cs > bs
	}
	return len(candidate.HardwareAddr) > len(current.HardwareAddr)
}

// AddressScore ranks an interface address by locality:
// unspecified 0, multicast 1, link-local 2, private 3, anything else 4.
func AddressScore(ip net.IP) int {
	switch {
	case ip.IsUnspecified():
		return 0
	case ip.IsMulticast():
		return 1
	case ip.IsLinkLocalUnicast():
		return 2
	case ip.IsPrivate():
		return 3
	default:
		return 4
	}
}
