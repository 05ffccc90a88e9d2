package models

// Hostname represents a single <hostname> entry of a scanned host
type Hostname struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// Attr is one entry of a port's merged attribute set
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Service represents the service guess nmap attached to a port
type Service struct {
	Name      string `json:"name,omitempty"`
	Product   string `json:"product,omitempty"`
	Version   string `json:"version,omitempty"`
	ExtraInfo string `json:"extra_info,omitempty"`
	Tunnel    string `json:"tunnel,omitempty"`
}

// Port represents one probed port of a host.
// Service is nil when the report carried no <service> element.
type Port struct {
	Protocol string   `json:"protocol"`
	PortID   string   `json:"port_id"`
	State    string   `json:"state"`
	Service  *Service `json:"service,omitempty"`
	Attrs    []Attr   `json:"attrs,omitempty"`
}

// Attr returns the value of a merged attribute and whether it was present
func (p Port) Attr(name string) (string, bool) {
	for _, a := range p.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Host represents a scanned host with its names and probed ports
type Host struct {
	Address string     `json:"address"`
	Names   []Hostname `json:"names,omitempty"`
	Ports   []Port     `json:"ports,omitempty"`
}

// FirstName returns the first name of the given type in document order
func (h Host) FirstName(nameType string) (string, bool) {
	for _, n := range h.Names {
		if n.Type == nameType {
			return n.Name, true
		}
	}
	return "", false
}

// OpenPorts returns the ports whose state is exactly "open", in document order
func (h Host) OpenPorts() []Port {
	var open []Port
	for _, p := range h.Ports {
		if p.State == StateOpen {
			open = append(open, p)
		}
	}
	return open
}
