package models

// Hostname types assigned by nmap
const (
	NameTypeUser = "user"
	NameTypePTR  = "PTR"
)

// StateOpen is the port state counted as open in reports
const StateOpen = "open"

// ServiceAttrPrefix prefixes service attributes in a port's merged attribute set
const ServiceAttrPrefix = "service_"
