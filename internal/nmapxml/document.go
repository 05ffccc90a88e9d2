package nmapxml

import "encoding/xml"

// XML parsing structs for a single <host> of nmap -oX output.
// Ports and state/service elements keep their raw attributes so the
// extractor can build the merged attribute set in document order.
type nmapHost struct {
	Addresses []nmapAddress  `xml:"address"`
	Hostnames *nmapHostnames `xml:"hostnames"`
	Ports     *nmapPorts     `xml:"ports"`
}

// nmapAddress keeps raw attributes so an empty addr="" is told apart
// from a missing one
type nmapAddress struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

func (a nmapAddress) attr(name string) (string, bool) {
	for _, at := range a.Attrs {
		if attrName(at.Name) == name {
			return at.Value, true
		}
	}
	return "", false
}

type nmapHostnames struct {
	Names []nmapHostname `xml:"hostname"`
}

type nmapHostname struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
}

type nmapPorts struct {
	Ports []nmapPort `xml:"port"`
}

type nmapPort struct {
	Attrs   []xml.Attr    `xml:",any,attr"`
	State   *nmapAttrList `xml:"state"`
	Service *nmapAttrList `xml:"service"`
}

type nmapAttrList struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

func attrName(n xml.Name) string {
	if n.Space != "" {
		return n.Space + ":" + n.Local
	}
	return n.Local
}
