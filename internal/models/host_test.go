package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHost_FirstName(t *testing.T) {
	host := Host{
		Address: "10.0.0.1",
		Names: []Hostname{
			{Type: "PTR", Name: "a.example.net"},
			{Type: "user", Name: "first"},
			{Type: "user", Name: "second"},
			{Type: "PTR", Name: "b.example.net"},
		},
	}

	name, ok := host.FirstName(NameTypeUser)
	assert.True(t, ok)
	assert.Equal(t, "first", name)

	name, ok = host.FirstName(NameTypePTR)
	assert.True(t, ok)
	assert.Equal(t, "a.example.net", name)

	_, ok = host.FirstName("ptr")
	assert.False(t, ok, "type match is case-sensitive")

	_, ok = Host{}.FirstName(NameTypeUser)
	assert.False(t, ok)
}

func TestHost_OpenPorts(t *testing.T) {
	host := Host{
		Ports: []Port{
			{Protocol: "tcp", PortID: "22", State: "open"},
			{Protocol: "tcp", PortID: "23", State: "closed"},
			{Protocol: "udp", PortID: "53", State: "open|filtered"},
			{Protocol: "tcp", PortID: "80", State: "Open"},
			{Protocol: "tcp", PortID: "443", State: "open"},
		},
	}

	open := host.OpenPorts()
	assert.Len(t, open, 2)
	assert.Equal(t, "22", open[0].PortID)
	assert.Equal(t, "443", open[1].PortID)

	assert.Empty(t, Host{}.OpenPorts())
}

func TestPort_Attr(t *testing.T) {
	port := Port{Attrs: []Attr{
		{Name: "protocol", Value: "tcp"},
		{Name: "service_name", Value: ""},
	}}

	v, ok := port.Attr("protocol")
	assert.True(t, ok)
	assert.Equal(t, "tcp", v)

	v, ok = port.Attr("service_name")
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = port.Attr("service_tunnel")
	assert.False(t, ok)
}

func TestNewReportMeta(t *testing.T) {
	meta := NewReportMeta("scan.xml", 3, 7)
	assert.NotEmpty(t, meta.ID)
	assert.Equal(t, "scan.xml", meta.Source)
	assert.Equal(t, 3, meta.HostCount)
	assert.Equal(t, 7, meta.OpenPortCount)
	assert.False(t, meta.GeneratedAt.IsZero())
	assert.NotEqual(t, meta.ID, NewReportMeta("scan.xml", 3, 7).ID)
}
