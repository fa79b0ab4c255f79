package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/satyasudipta98-dot/Foodie-we/entity"
	"github.com/satyasudipta98-dot/Foodie-we/repository"
)

var (
	ErrCartEmpty        = errors.New("cart is empty")
	ErrAddressRequired  = errors.New("address is required")
	ErrBadPaymentMethod = errors.New("invalid payment method")
	ErrShortTransaction = errors.New("transaction reference must be at least 4 characters")
	ErrInvalidStatus    = errors.New("invalid order status")
)

// OrderEvents receives ledger changes for live fan-out (the admin feed).
// Implementations must not block.
type OrderEvents interface {
	OrderPlaced(o *entity.Order)
	StatusChanged(orderID uint, status entity.OrderStatus)
}

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	CartRepo     *repository.CartRepository
	CatalogRepo  *repository.CatalogRepository
	SettingsRepo *repository.SettingsRepository

	Events OrderEvents // optional
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	catalogRepo *repository.CatalogRepository,
	settingsRepo *repository.SettingsRepository,
) *OrderService {
	return &OrderService{
		DB:           db,
		Repo:         repo,
		CartRepo:     cartRepo,
		CatalogRepo:  catalogRepo,
		SettingsRepo: settingsRepo,
	}
}

type PlaceOrderReq struct {
	Address        string `json:"address" binding:"required"`
	DeliveryTime   string `json:"deliveryTime"`
	PaymentMethod  string `json:"paymentMethod" binding:"required,oneof=Online COD"`
	TransactionRef string `json:"transactionRef"`
}

// Place freezes the cart into an order: snapshot items, the full price
// breakdown, hotel and user identity, delivery and payment details. Order
// creation and cart clearing run in one transaction, so a failure leaves
// the ledger and the cart exactly as they were.
func (s *OrderService) Place(user *entity.User, req *PlaceOrderReq) (*entity.Order, error) {
	if strings.TrimSpace(req.Address) == "" {
		return nil, ErrAddressRequired
	}
	if req.PaymentMethod != entity.PaymentOnline && req.PaymentMethod != entity.PaymentCOD {
		return nil, ErrBadPaymentMethod
	}
	// Format check only; nothing verifies the payment actually happened.
	if req.PaymentMethod == entity.PaymentOnline && len(strings.TrimSpace(req.TransactionRef)) < 4 {
		return nil, ErrShortTransaction
	}

	cart, err := s.CartRepo.GetCartWithItems(user.ID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	settings, err := s.SettingsRepo.Get()
	if err != nil {
		return nil, err
	}
	quote := Quote(cart.Items, settings, cart.Coupon)

	hotelID, hotelName := s.hotelSnapshot(cart.Items)

	order := &entity.Order{
		Code:           newOrderCode(),
		UserID:         user.ID,
		UserName:       user.Name,
		UserMobile:     user.Mobile,
		HotelID:        hotelID,
		HotelName:      hotelName,
		Subtotal:       quote.Subtotal,
		DeliveryFee:    quote.DeliveryFee,
		PlatformFee:    quote.PlatformFee,
		Surcharge:      quote.Surcharge,
		Discount:       quote.Discount,
		Total:          quote.Total,
		Address:        strings.TrimSpace(req.Address),
		DeliveryTime:   req.DeliveryTime,
		PaymentMethod:  req.PaymentMethod,
		TransactionRef: strings.TrimSpace(req.TransactionRef),
		Status:         entity.StatusPending,
	}
	for _, it := range cart.Items {
		order.Items = append(order.Items, entity.OrderItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			UnitPrice:  it.UnitPrice,
			Qty:        it.Qty,
			Total:      it.UnitPrice * int64(it.Qty),
		})
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, order); err != nil {
			return err
		}
		return s.CartRepo.ClearCart(tx, user.ID)
	})
	if err != nil {
		return nil, err
	}

	if s.Events != nil {
		s.Events.OrderPlaced(order)
	}
	return order, nil
}

// hotelSnapshot resolves the hotel the order belongs to. Carts spanning
// several hotels are recorded as "Multiple", matching the storefront.
func (s *OrderService) hotelSnapshot(items []entity.CartItem) (uint, string) {
	hotelID := items[0].HotelID
	for _, it := range items[1:] {
		if it.HotelID != hotelID {
			return 0, "Multiple"
		}
	}
	h, err := s.CatalogRepo.GetHotel(hotelID)
	if err != nil {
		// Hotel deleted since the item was added; the order keeps the id.
		return hotelID, "Unknown"
	}
	return h.ID, h.Name
}

func newOrderCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ORD-" + strings.ToUpper(raw[:8])
}

// ---------------- Queries ----------------

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	return s.Repo.GetOrderForUser(userID, orderID)
}

func (s *OrderService) ListAll() ([]entity.Order, error) {
	return s.Repo.ListAll()
}

func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	return s.Repo.GetOrder(orderID)
}

// UpdateStatus overwrites the status of an order. Any valid status may be
// set from any other; an unknown order id is a silent no-op. Returns
// whether an order was actually updated.
func (s *OrderService) UpdateStatus(orderID uint, status entity.OrderStatus) (bool, error) {
	if !status.Valid() {
		return false, ErrInvalidStatus
	}
	updated, err := s.Repo.UpdateStatus(orderID, status)
	if err != nil {
		return false, err
	}
	if updated && s.Events != nil {
		s.Events.StatusChanged(orderID, status)
	}
	return updated, nil
}

// ---------------- Dashboard aggregates ----------------

type DashboardStats struct {
	Revenue     int64 `json:"revenue"`     // sum of totals, Rejected excluded
	TodayOrders int64 `json:"todayOrders"` // orders created this calendar day
}

func (s *OrderService) Stats(now time.Time) (*DashboardStats, error) {
	revenue, err := s.Repo.Revenue()
	if err != nil {
		return nil, err
	}

	year, month, day := now.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	count, err := s.Repo.CountCreatedBetween(start, start.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	return &DashboardStats{Revenue: revenue, TodayOrders: count}, nil
}

// SummaryText renders the plain-text order digest the dashboard hands to
// the admin for forwarding.
func SummaryText(o *entity.Order) string {
	lines := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, fmt.Sprintf("%dx %s", it.Qty, it.Name))
	}
	text := fmt.Sprintf("Order ID: %s\nCustomer: %s (%s)\nHotel: %s\nItems: %s\nAddress: %s\nTotal: ₹%d\nPayment: %s",
		o.Code, o.UserName, o.UserMobile, o.HotelName,
		strings.Join(lines, ", "), o.Address, o.Total, o.PaymentMethod)
	if o.TransactionRef != "" {
		text += fmt.Sprintf(" (Tx: %s)", o.TransactionRef)
	}
	return text
}
