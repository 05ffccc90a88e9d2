// Package report renders extracted scan hosts as a markdown table.
package report

import (
	"fmt"
	"iter"
	"strings"

	"github.com/hakim/nmaptable/internal/models"
)

const (
	tableHeader    = "| host | ptr | ip | open ports |\n"
	tableSeparator = "| - | - | - | - |\n"

	// placeholder for a missing name
	noName = "-"

	noOpenPorts = "(no open ports probed?)"
)

// Summary counts what a rendered table contains
type Summary struct {
	Hosts     int
	OpenPorts int
}

// RenderTable consumes hosts in order and returns the complete markdown
// table. If the sequence yields an error the table is discarded and only the
// error is returned, so callers never print a partial report.
func RenderTable(hosts iter.Seq2[models.Host, error]) (string, Summary, error) {
	var b strings.Builder
	var sum Summary

	b.WriteString(tableHeader)
	b.WriteString(tableSeparator)

	for host, err := range hosts {
		if err != nil {
			return "", Summary{}, err
		}
		b.WriteString(FormatRow(host))
		b.WriteString("\n")

		sum.Hosts++
		sum.OpenPorts += len(host.OpenPorts())
	}

	return b.String(), sum, nil
}

// FormatRow renders one host as "| user | ptr | ip | open ports |"
func FormatRow(host models.Host) string {
	userName := nameOrPlaceholder(host, models.NameTypeUser)
	ptrName := nameOrPlaceholder(host, models.NameTypePTR)

	return fmt.Sprintf("| %s | %s | %s | %s |", userName, ptrName, host.Address, formatOpenPorts(host))
}

// nameOrPlaceholder returns the first name of the given type, or "-"
func nameOrPlaceholder(host models.Host, nameType string) string {
	if name, ok := host.FirstName(nameType); ok {
		return name
	}
	return noName
}

// formatOpenPorts joins the descriptors of the host's open ports
func formatOpenPorts(host models.Host) string {
	open := host.OpenPorts()
	if len(open) == 0 {
		return noOpenPorts
	}

	descs := make([]string, len(open))
	for i, port := range open {
		descs[i] = FormatPort(port)
	}
	return strings.Join(descs, ", ")
}
