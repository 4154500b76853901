package handler

import (
	"time"

	"loyalty/internal/domain/entity"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
)

// PrincipalView is the public shape of an authenticated identity.
type PrincipalView struct {
	ID         uuid.UUID  `json:"id"`
	Role       string     `json:"role"`
	Username   string     `json:"username,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	CustomerID *uuid.UUID `json:"customerId,omitempty"`
	DealerID   *uuid.UUID `json:"dealerId,omitempty"`
}

func toPrincipalView(p entity.Principal) PrincipalView {
	return PrincipalView{
		ID:         p.SubjectID,
		Role:       p.Role.String(),
		Username:   p.Username,
		Phone:      p.Phone,
		CustomerID: p.CustomerID,
		DealerID:   p.DealerID,
	}
}

// SessionView is returned by every login and refresh.
type SessionView struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	ExpiresIn    int           `json:"expiresIn"`
	User         PrincipalView `json:"user"`
}

func toSessionView(out *usecase.SessionOutput) SessionView {
	return SessionView{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		ExpiresIn:    out.ExpiresIn,
		User:         toPrincipalView(out.Principal),
	}
}

// StaffView is a staff operator without credentials.
type StaffView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

func toStaffView(u *entity.StaffUser) StaffView {
	return StaffView{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role.String(),
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

// CustomerView is a customer and its balance.
type CustomerView struct {
	ID        uuid.UUID `json:"id"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	Points    int64     `json:"points"`
	CreatedAt time.Time `json:"createdAt"`
}

func toCustomerView(c *entity.Customer) CustomerView {
	return CustomerView{
		ID:        c.ID,
		Phone:     c.Phone,
		Name:      c.Name,
		Points:    c.Points,
		CreatedAt: c.CreatedAt,
	}
}

// DealerView is the admin view of a dealer.
type DealerView struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	ShopName  string    `json:"shopName,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Points    int64     `json:"points"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toDealerView(d *entity.Dealer) DealerView {
	return DealerView{
		ID:        d.ID,
		Code:      d.Code,
		Name:      d.Name,
		ShopName:  d.ShopName,
		Phone:     d.Phone,
		Address:   d.Address,
		Points:    d.Points,
		Status:    string(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// DealerLookupView is the public view of an active dealer.
type DealerLookupView struct {
	ID       uuid.UUID `json:"id"`
	Code     string    `json:"code"`
	Name     string    `json:"name"`
	ShopName string    `json:"shopName,omitempty"`
}

func toDealerLookupView(d *entity.Dealer) DealerLookupView {
	return DealerLookupView{ID: d.ID, Code: d.Code, Name: d.Name, ShopName: d.ShopName}
}

// ProfileView is the caller's own profile.
type ProfileView struct {
	User     PrincipalView `json:"user"`
	Staff    *StaffView    `json:"staff,omitempty"`
	Customer *CustomerView `json:"customer,omitempty"`
	Dealer   *DealerView   `json:"dealer,omitempty"`
}

func toProfileView(out *usecase.ProfileOutput) ProfileView {
	view := ProfileView{User: toPrincipalView(out.Principal)}
	if out.Staff != nil {
		v := toStaffView(out.Staff)
		view.Staff = &v
	}
	if out.Customer != nil {
		v := toCustomerView(out.Customer)
		view.Customer = &v
	}
	if out.Dealer != nil {
		v := toDealerView(out.Dealer)
		view.Dealer = &v
	}

	return view
}

// ProductView is a catalog entry.
type ProductView struct {
	ID            uuid.UUID `json:"id"`
	SKU           string    `json:"sku"`
	Name          string    `json:"name"`
	TotalBarcodes *int64    `json:"totalBarcodes,omitempty"`
	UsedBarcodes  *int64    `json:"usedBarcodes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toProductView(p *entity.Product) ProductView {
	return ProductView{ID: p.ID, SKU: p.SKU, Name: p.Name, CreatedAt: p.CreatedAt}
}

func toProductWithCountsView(p *entity.ProductWithCounts) ProductView {
	view := toProductView(&p.Product)
	total, used := p.TotalBarcodes, p.UsedBarcodes
	view.TotalBarcodes = &total
	view.UsedBarcodes = &used

	return view
}

// BarcodeView is a registered barcode.
type BarcodeView struct {
	ID          uuid.UUID              `json:"id"`
	Code        string                 `json:"code"`
	Status      string                 `json:"status"`
	Product     *entity.ProductSummary `json:"product,omitempty"`
	ActivatedAt *time.Time             `json:"activatedAt,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
}

func toBarcodeView(b *entity.BarcodeItem) BarcodeView {
	view := BarcodeView{
		ID:          b.ID,
		Code:        b.Code,
		Status:      string(b.Status),
		ActivatedAt: b.ActivatedAt,
		CreatedAt:   b.CreatedAt,
	}
	if b.Product != nil {
		summary := b.Product.Summary()
		view.Product = &summary
	}

	return view
}

// BarcodeProductView is the public barcode lookup result.
type BarcodeProductView struct {
	Code        string                `json:"code"`
	Status      string                `json:"status"`
	ActivatedAt *time.Time            `json:"activatedAt,omitempty"`
	Product     entity.ProductSummary `json:"product"`
}

// BatchItemView is one batch registration outcome.
type BatchItemView struct {
	Code      string       `json:"code"`
	Status    string       `json:"status"`
	Barcode   *BarcodeView `json:"barcode,omitempty"`
	ErrorCode string       `json:"errorCode,omitempty"`
	Error     string       `json:"error,omitempty"`
}

// BatchView summarises a batch registration.
type BatchView struct {
	Total   int             `json:"total"`
	Success int             `json:"success"`
	Errors  int             `json:"errors"`
	Results []BatchItemView `json:"results"`
}

func toBatchView(out *usecase.BatchRegisterOutput) BatchView {
	view := BatchView{
		Total:   out.Total,
		Success: out.Success,
		Errors:  out.Errors,
		Results: make([]BatchItemView, 0, len(out.Results)),
	}
	for _, r := range out.Results {
		item := BatchItemView{Code: r.Code, Status: r.Status, ErrorCode: r.ErrorCode, Error: r.Error}
		if r.Barcode != nil {
			b := toBarcodeView(r.Barcode)
			item.Barcode = &b
		}
		view.Results = append(view.Results, item)
	}

	return view
}

// ActivationResultView is returned by a successful activation.
type ActivationResultView struct {
	ActivationID   uuid.UUID             `json:"activationId"`
	Product        entity.ProductSummary `json:"product"`
	CustomerPoints int64                 `json:"customerPoints"`
	DealerPoints   *int64                `json:"dealerPoints,omitempty"`
	ActivatedAt    time.Time             `json:"activatedAt"`
}

// ActivationView is one row of an activation listing.
type ActivationView struct {
	ID            uuid.UUID  `json:"id"`
	Barcode       string     `json:"barcode"`
	ProductName   string     `json:"productName"`
	ProductSKU    string     `json:"productSku"`
	CustomerID    uuid.UUID  `json:"customerId"`
	CustomerName  string     `json:"customerName"`
	CustomerPhone string     `json:"customerPhone"`
	DealerID      *uuid.UUID `json:"dealerId,omitempty"`
	DealerCode    *string    `json:"dealerCode,omitempty"`
	DealerName    *string    `json:"dealerName,omitempty"`
	StaffID       *uuid.UUID `json:"staffId,omitempty"`
	PointsAwarded int        `json:"pointsAwarded"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func toActivationView(r *entity.ActivationRecord) ActivationView {
	return ActivationView{
		ID:            r.ID,
		Barcode:       r.BarcodeCode,
		ProductName:   r.ProductName,
		ProductSKU:    r.ProductSKU,
		CustomerID:    r.CustomerID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		DealerID:      r.DealerID,
		DealerCode:    r.DealerCode,
		DealerName:    r.DealerName,
		StaffID:       r.StaffID,
		PointsAwarded: r.PointsAwarded,
		CreatedAt:     r.CreatedAt,
	}
}

// CustomerDetailView is a customer with its recent activations.
type CustomerDetailView struct {
	Customer    CustomerView     `json:"customer"`
	Activations []ActivationView `json:"activations"`
}

// AuditLogView is one audit entry.
type AuditLogView struct {
	ID         uuid.UUID      `json:"id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	UserID     *uuid.UUID     `json:"userId,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func toAuditLogView(e *entity.AuditLogEntry) AuditLogView {
	return AuditLogView{
		ID:         e.ID,
		Action:     string(e.Action),
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		UserID:     e.UserID,
		Metadata:   e.Metadata,
		CreatedAt:  e.CreatedAt,
	}
}
