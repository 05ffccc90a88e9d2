// Package nmapxml extracts host and port records from nmap XML reports.
// The report is decoded as a token stream, one <host> element at a time,
// so hosts are produced lazily in document order.
package nmapxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"golang.org/x/net/html/charset"

	"github.com/hakim/nmaptable/internal/models"
)

var byteOrderMark = []byte("\ufeff")

// Open opens an nmap XML report for reading.
// Any failure to open the path, or a path naming a directory, is ErrInputNotFound.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", ErrInputNotFound, path)
	}

	return f, nil
}

// Hosts returns the host records of the report read from r.
// Only <host> elements that are direct children of the root element count.
// The sequence stops after yielding the first error; it can be ranged once.
func Hosts(r io.Reader) iter.Seq2[models.Host, error] {
	return func(yield func(models.Host, error) bool) {
		d := xml.NewDecoder(r)
		d.CharsetReader = charset.NewReaderLabel

		if err := findRoot(d); err != nil {
			yield(models.Host{}, err)
			return
		}

		index := 0
		for {
			tok, err := d.Token()
			if err != nil {
				yield(models.Host{}, malformed(err))
				return
			}

			switch t := tok.(type) {
			case xml.StartElement:
				if t.Name.Local != "host" {
					if err := d.Skip(); err != nil {
						yield(models.Host{}, malformed(err))
						return
					}
					continue
				}

				index++
				var raw nmapHost
				if err := d.DecodeElement(&raw, &t); err != nil {
					yield(models.Host{}, malformed(err))
					return
				}

				host, err := hostRecord(&raw)
				if err != nil {
					yield(models.Host{}, &HostError{Index: index, Address: host.Address, Err: err})
					return
				}
				if !yield(host, nil) {
					return
				}

			case xml.EndElement:
				// Children are consumed whole, so this closes the root
				if err := checkTrailing(d); err != nil {
					yield(models.Host{}, err)
				}
				return
			}
		}
	}
}

// findRoot advances the decoder past the root start element
func findRoot(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			return malformed(errors.New("no root element"))
		}
		if err != nil {
			return malformed(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return nil
		case xml.CharData:
			if len(bytes.TrimSpace(bytes.TrimPrefix(t, byteOrderMark))) > 0 {
				return malformed(errors.New("text before root element"))
			}
		}
	}
}

// checkTrailing rejects anything but whitespace, comments and processing
// instructions after the root element
func checkTrailing(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return malformed(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return malformed(fmt.Errorf("element <%s> after root element", t.Name.Local))
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return malformed(errors.New("text after root element"))
			}
		}
	}
}

// hostRecord converts one decoded <host> element. On error the returned
// host carries whatever address was read, for error context.
func hostRecord(raw *nmapHost) (models.Host, error) {
	var host models.Host

	if len(raw.Addresses) == 0 {
		return host, ErrMissingAddress
	}
	addr, ok := raw.Addresses[0].attr("addr")
	if !ok {
		return host, ErrMissingAddress
	}
	host.Address = addr

	if raw.Hostnames != nil {
		host.Names = make([]models.Hostname, 0, len(raw.Hostnames.Names))
		for _, hn := range raw.Hostnames.Names {
			host.Names = append(host.Names, models.Hostname{Type: hn.Type, Name: hn.Name})
		}
	}

	ports, err := portRecords(raw)
	if err != nil {
		return host, err
	}
	host.Ports = ports

	return host, nil
}

// portRecords converts the <port> elements of a host in document order
func portRecords(raw *nmapHost) ([]models.Port, error) {
	if raw.Ports == nil {
		return nil, ErrMissingPortsContainer
	}

	ports := make([]models.Port, 0, len(raw.Ports.Ports))
	for i := range raw.Ports.Ports {
		port, err := portRecord(&raw.Ports.Ports[i])
		if err != nil {
			return nil, fmt.Errorf("port #%d: %w", i+1, err)
		}
		ports = append(ports, port)
	}
	return ports, nil
}

// portRecord merges the attributes of a <port>, its <state> and its
// <service> (under the service_ prefix), later sets overriding earlier ones.
func portRecord(raw *nmapPort) (models.Port, error) {
	if raw.State == nil {
		return models.Port{}, fmt.Errorf("%w: no state element", ErrIncompletePort)
	}

	attrs := mergeAttrs(nil, "", raw.Attrs)
	attrs = mergeAttrs(attrs, "", raw.State.Attrs)
	if raw.Service != nil {
		attrs = mergeAttrs(attrs, models.ServiceAttrPrefix, raw.Service.Attrs)
	}

	port := models.Port{Attrs: attrs}

	var ok bool
	if port.Protocol, ok = port.Attr("protocol"); !ok {
		return port, fmt.Errorf("%w: no protocol", ErrIncompletePort)
	}
	if port.PortID, ok = port.Attr("portid"); !ok {
		return port, fmt.Errorf("%w: no portid", ErrIncompletePort)
	}
	if port.State, ok = port.Attr("state"); !ok {
		return port, fmt.Errorf("%w: no state", ErrIncompletePort)
	}

	if raw.Service != nil {
		svc := &models.Service{}
		svc.Name, _ = port.Attr(models.ServiceAttrPrefix + "name")
		svc.Product, _ = port.Attr(models.ServiceAttrPrefix + "product")
		svc.Version, _ = port.Attr(models.ServiceAttrPrefix + "version")
		svc.ExtraInfo, _ = port.Attr(models.ServiceAttrPrefix + "extrainfo")
		svc.Tunnel, _ = port.Attr(models.ServiceAttrPrefix + "tunnel")
		port.Service = svc
	}

	return port, nil
}

// mergeAttrs adds src to dst under prefix. An existing name keeps its
// position and takes the new value.
func mergeAttrs(dst []models.Attr, prefix string, src []xml.Attr) []models.Attr {
	for _, a := range src {
		name := prefix + attrName(a.Name)

		replaced := false
		for i := range dst {
			if dst[i].Name == name {
				dst[i].Value = a.Value
				replaced = true
				break
			}
		}
		if !replaced {
			dst = append(dst, models.Attr{Name: name, Value: a.Value})
		}
	}
	return dst
}
