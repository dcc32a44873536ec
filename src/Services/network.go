package Services

import (
	"net"
)

type NetworkAddress struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// NetworkAddresses enumerates non-loopback IPv4 addresses so the
// startup banner can print LAN access URLs.
func NetworkAddresses() []NetworkAddress {
	addresses := make([]NetworkAddress, 0)

	interfaces, err := net.Interfaces()
	if err != nil {
		return addresses
	}

	for _, iface := range interfaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			ip := ipNet.IP.To4()
			if ip == nil || ip.IsLoopback() {
				continue
			}
			addresses = append(addresses, NetworkAddress{
				Name:    iface.Name,
				Address: ip.String(),
			})
		}
	}

	return addresses
}
