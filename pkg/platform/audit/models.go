// Package audit defines the external sensitive-access compliance channel.
// This is distinct from the deletion workflow's own append-only trail: records
// here feed the org-wide compliance pipeline and are emitted best-effort after
// the primary transaction commits.
package audit

import (
	"context"
	"time"

	id "markethub/pkg/domain"
)

// ResourceType names the kind of sensitive resource that was touched.
type ResourceType string

const (
	ResourceCustomerProfile ResourceType = "customer_profile"
	ResourceOrderHistory    ResourceType = "order_history"
	ResourcePaymentDetails  ResourceType = "payment_details"
)

// AccessAction names what was done to the resource.
type AccessAction string

const (
	AccessActionView   AccessAction = "view"
	AccessActionModify AccessAction = "modify"
	AccessActionExport AccessAction = "export"
)

// SensitiveAccessRecord is one compliance event describing access to a
// sensitive resource. Keep it transport-agnostic so sinks can fan out.
type SensitiveAccessRecord struct {
	Timestamp       time.Time    `json:"timestamp"`
	AccessedBy      id.UserID    `json:"accessed_by"`
	AccessedByRole  string       `json:"accessed_by_role"`
	ResourceType    ResourceType `json:"resource_type"`
	ResourceID      string       `json:"resource_id"`
	Action          AccessAction `json:"action"`
	ResourceOwnerID id.UserID    `json:"resource_owner_id"`
	Reason          string       `json:"reason"`
	IPAddress       string       `json:"ip_address,omitempty"`
	UserAgent       string       `json:"user_agent,omitempty"`
}

// Logger is the external compliance sink. Implementations must not block the
// caller's critical path longer than a produce enqueue; delivery failures are
// the sink's own retry/alert concern.
type Logger interface {
	Log(ctx context.Context, record SensitiveAccessRecord) error
}
