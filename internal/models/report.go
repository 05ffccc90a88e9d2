package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportMeta records one rendered report in the history store
type ReportMeta struct {
	ID            string    `json:"id"`
	Source        string    `json:"source"`
	GeneratedAt   time.Time `json:"generated_at"`
	HostCount     int       `json:"host_count"`
	OpenPortCount int       `json:"open_port_count"`
}

// NewReportMeta creates a report record for the given input file
func NewReportMeta(source string, hosts, openPorts int) *ReportMeta {
	return &ReportMeta{
		ID:            uuid.New().String(),
		Source:        source,
		GeneratedAt:   time.Now(),
		HostCount:     hosts,
		OpenPortCount: openPorts,
	}
}
