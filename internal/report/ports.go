package report

import (
	"fmt"

	"github.com/hakim/nmaptable/internal/models"
)

// fallbackLabel is used when a port carries no service product or name.
// It does not look at the port state.
const fallbackLabel = "open"

// FormatPort renders a port as "{protocol}/{portid}: {label}", where label is
// the service product, else the service name, else "open". A non-empty
// service tunnel is appended as " (over {tunnel})" to a product or name label.
func FormatPort(port models.Port) string {
	header := fmt.Sprintf("%s/%s", port.Protocol, port.PortID)

	label := serviceLabel(port.Service)
	if label == "" {
		return fmt.Sprintf("%s: %s", header, fallbackLabel)
	}

	if port.Service.Tunnel != "" {
		label = fmt.Sprintf("%s (over %s)", label, port.Service.Tunnel)
	}
	return fmt.Sprintf("%s: %s", header, label)
}

// serviceLabel picks the product, then the name, of a service
func serviceLabel(svc *models.Service) string {
	if svc == nil {
		return ""
	}
	if svc.Product != "" {
		return svc.Product
	}
	return svc.Name
}
