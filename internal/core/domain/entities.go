package domain

// DiscountType selects which of amount / percentage is meaningful on a discount
type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountAmount     DiscountType = "AMOUNT"
)

// Valid reports whether t is a known discount type
func (t DiscountType) Valid() bool {
	return t == DiscountPercentage || t == DiscountAmount
}

// CustomerType identifies which account table an RMA filer lives in
type CustomerType string

const (
	CustomerDealer     CustomerType = "DEALER"
	CustomerTechnician CustomerType = "TECHNICIAN"
	CustomerBackOffice CustomerType = "BACKOFFICE"
)

// Valid reports whether t is a known customer type
func (t CustomerType) Valid() bool {
	switch t {
	case CustomerDealer, CustomerTechnician, CustomerBackOffice:
		return true
	}
	return false
}

// DealerFilter narrows dealer listings
type DealerFilter string

const (
	DealerFilterAll         DealerFilter = ""
	DealerFilterApproved    DealerFilter = "approved"
	DealerFilterNotApproved DealerFilter = "not-approved"
	DealerFilterDistributor DealerFilter = "distributor"
)

// Notification channels and delivery states
const (
	ChannelEmail = "EMAIL"
	ChannelSMS   = "SMS"

	NotificationPending = "PENDING"
	NotificationSent    = "SENT"
	NotificationFailed  = "FAILED"
	NotificationSkipped = "SKIPPED"
)
