package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// money and percentages travel as JSON numbers
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DayLayout is the wire format of calendar days
const DayLayout = "2006-01-02"

// Day is a calendar day stored in a DATE column and sent as "2006-01-02"
type Day struct {
	datatypes.Date
}

// NewDay truncates t to its UTC calendar day
func NewDay(t time.Time) Day {
	y, m, d := t.UTC().Date()
	return Day{datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))}
}

// ParseDay parses a "2006-01-02" string as a UTC day
func ParseDay(s string) (Day, error) {
	t, err := time.ParseInLocation(DayLayout, s, time.UTC)
	if err != nil {
		return Day{}, err
	}
	return NewDay(t), nil
}

// Time returns midnight UTC of the day
func (d Day) Time() time.Time {
	return time.Time(d.Date).UTC()
}

func (d Day) String() string {
	return d.Time().Format(DayLayout)
}

func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Day) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("day must be a %q string", DayLayout)
	}
	parsed, err := ParseDay(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ============================================================
// Admin accounts
// ============================================================

// Admin represents admins table (back-office staff using the dashboards)
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Admin) TableName() string {
	return "admins"
}

// ============================================================
// Customer accounts
// ============================================================

// Address is embedded twice on Dealer (shipping_ / billing_ prefixes)
type Address struct {
	Line1   string `gorm:"size:255" json:"line1"`
	Line2   string `gorm:"size:255" json:"line2"`
	City    string `gorm:"size:100" json:"city"`
	State   string `gorm:"size:100" json:"state"`
	Pincode string `gorm:"size:10" json:"pincode"`
}

// Dealer represents dealers table
type Dealer struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	FirstName       string    `gorm:"size:100;not null" json:"first_name"`
	LastName        string    `gorm:"size:100" json:"last_name"`
	BusinessName    string    `gorm:"size:200;not null" json:"business_name"`
	GSTIN           string    `gorm:"column:gstin;size:15;uniqueIndex;not null" json:"gstin"`
	Email           string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone           string    `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	ShippingAddress Address   `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	BillingAddress  Address   `gorm:"embedded;embeddedPrefix:billing_" json:"billing_address"`
	ProfilePic      string    `gorm:"size:500" json:"profile_pic"`
	IsApproved      bool      `gorm:"default:false;index" json:"is_approved"`
	IsDistributor   bool      `gorm:"default:false;index" json:"is_distributor"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Dealer) TableName() string {
	return "dealers"
}

// FullName returns the dealer's display name
func (d *Dealer) FullName() string {
	if d.LastName == "" {
		return d.FirstName
	}
	return d.FirstName + " " + d.LastName
}

// Technician represents technicians table (sub-account of a dealer)
type Technician struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	DealerID   uint      `gorm:"not null;index" json:"dealer_id"`
	FirstName  string    `gorm:"size:100;not null" json:"first_name"`
	LastName   string    `gorm:"size:100" json:"last_name"`
	Email      string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone      string    `gorm:"size:20" json:"phone"`
	ProfilePic string    `gorm:"size:500" json:"profile_pic"`
	IsApproved bool      `gorm:"default:false" json:"is_approved"`
	IsPassed   bool      `gorm:"default:false" json:"is_passed"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Dealer *Dealer `gorm:"foreignKey:DealerID" json:"dealer,omitempty"`
}

func (Technician) TableName() string {
	return "technicians"
}

// BackOffice represents back_offices table (sub-account of a dealer)
type BackOffice struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	DealerID   uint      `gorm:"not null;index" json:"dealer_id"`
	FirstName  string    `gorm:"size:100;not null" json:"first_name"`
	LastName   string    `gorm:"size:100" json:"last_name"`
	Email      string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone      string    `gorm:"size:20" json:"phone"`
	ProfilePic string    `gorm:"size:500" json:"profile_pic"`
	IsApproved bool      `gorm:"default:false" json:"is_approved"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Dealer *Dealer `gorm:"foreignKey:DealerID" json:"dealer,omitempty"`
}

func (BackOffice) TableName() string {
	return "back_offices"
}

// ============================================================
// Catalog
// ============================================================

// Category represents categories table
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Image     string    `gorm:"size:500" json:"image"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

// Subcategory represents subcategories table
type Subcategory struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Image      string    `gorm:"size:500" json:"image"`
	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Subcategory) TableName() string {
	return "subcategories"
}

// Product represents products table
type Product struct {
	ID            uint                        `gorm:"primaryKey" json:"id"`
	Title         string                      `gorm:"size:255;uniqueIndex;not null" json:"title"`
	Price         decimal.Decimal             `gorm:"type:decimal(14,2);not null" json:"price"`
	Quantity      int                         `gorm:"not null;default:0" json:"quantity"`
	Warranty      string                      `gorm:"size:100" json:"warranty"`
	IsVisible     bool                        `gorm:"not null;index" json:"is_visible"`
	Keywords      datatypes.JSONSlice[string] `json:"keywords"`
	Images        datatypes.JSONSlice[string] `json:"images"`
	Description   string                      `gorm:"type:text" json:"description"`
	CategoryID    uint                        `gorm:"not null;index" json:"category_id"`
	SubcategoryID uint                        `gorm:"not null;index" json:"subcategory_id"`
	CreatedAt     time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`

	Category    *Category    `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Subcategory *Subcategory `gorm:"foreignKey:SubcategoryID" json:"subcategory,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

// ============================================================
// Commercial
// ============================================================

// Discount represents discounts table. Exactly one of Amount / Percentage is
// meaningful depending on DiscountType; the other is stored as 0.
type Discount struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	DealerID     uint            `gorm:"not null;index" json:"dealer_id"`
	ProductID    uint            `gorm:"not null;index" json:"product_id"`
	DiscountType string          `gorm:"size:20;not null" json:"discount_type"`
	Amount       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"amount"`
	Percentage   decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"percentage"`
	ExpiryDate   Day             `gorm:"not null;index" json:"expiry_date"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`

	Dealer  *Dealer  `gorm:"foreignKey:DealerID" json:"dealer,omitempty"`
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (Discount) TableName() string {
	return "discounts"
}

// ============================================================
// Support
// ============================================================

// RMARequest represents rma_requests table
type RMARequest struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RMANumber    string    `gorm:"column:rma_number;size:40;uniqueIndex;not null" json:"rma_number"`
	CustomerType string    `gorm:"size:20;not null;index:idx_rma_customer" json:"customer_type"`
	CustomerID   uint      `gorm:"not null;index:idx_rma_customer" json:"customer_id"`
	ProductName  string    `gorm:"size:255;not null" json:"product_name"`
	SerialNumber string    `gorm:"size:100" json:"serial_number"`
	Reason       string    `gorm:"type:text" json:"reason"`
	Status       string    `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RMARequest) TableName() string {
	return "rma_requests"
}

// Course represents courses table (e-learning for technicians)
type Course struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Content     string    `gorm:"type:longtext" json:"content"`
	IsPublished bool      `gorm:"default:false;index" json:"is_published"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Course) TableName() string {
	return "courses"
}

// Notification represents notifications table (outbound message log)
type Notification struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Channel      string    `gorm:"size:10;not null" json:"channel"`
	Recipient    string    `gorm:"size:150;not null" json:"recipient"`
	Subject      string    `gorm:"size:255" json:"subject"`
	Content      string    `gorm:"type:text" json:"content"`
	Status       string    `gorm:"size:10;not null;index" json:"status"`
	ErrorMessage string    `gorm:"type:text" json:"error_message,omitempty"`
	Reference    string    `gorm:"size:100;index" json:"reference"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates or updates every table
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Admin{},
		&Dealer{},
		&Technician{},
		&BackOffice{},
		&Category{},
		&Subcategory{},
		&Product{},
		&Discount{},
		&RMARequest{},
		&Course{},
		&Notification{},
	)
}
