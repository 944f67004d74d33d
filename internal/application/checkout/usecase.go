// internal/application/checkout/usecase.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	cartdom "sunshinesaree/internal/domain/cart"
	orderdom "sunshinesaree/internal/domain/order"
	userdom "sunshinesaree/internal/domain/user"
)

// ErrEmptyCart is returned before the flow runs; callers redirect the
// user back to the cart instead of creating an order.
var ErrEmptyCart = errors.New("checkout: cart is empty")

// CartService is the slice of the cart aggregate the checkout flow needs.
type CartService interface {
	Items() []cartdom.LineItem
	Subtotal() int
	IsEmpty() bool
	Clear(ctx context.Context)
}

// EmailClient sends plain-text mail (confirmation email is best-effort).
type EmailClient interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// Usecase implements order placement. Checkout is a user-facing
// commitment: once the form validates, the flow never hard-fails.
// Backend durability failures degrade to the local archive, and even an
// unexpected panic still clears the cart and yields a confirmation id.
type Usecase struct {
	Cart    CartService
	Orders  orderdom.Repository
	Archive orderdom.Archive

	// Mailer may be nil (confirmation email disabled).
	Mailer   EmailClient
	MailFrom string

	// Now is the clock; defaults to time.Now when nil.
	Now func() time.Time
}

// Result is what the confirmation screen needs.
type Result struct {
	// OrderID is the canonical id: the Firestore doc id when the remote
	// save succeeded, otherwise the client-generated id.
	OrderID   string
	DisplayID string

	// PersistedRemotely is false when the order only reached the local
	// archive (or, after an unexpected failure, nowhere at all).
	PersistedRemotely bool
}

// PlaceOrder runs the checkout flow for the current cart contents.
// Returned errors are limited to ErrEmptyCart and FieldErrors; everything
// past validation resolves to a Result.
func (u *Usecase) PlaceOrder(ctx context.Context, form Form, identity *userdom.Identity) (res Result, err error) {
	if u == nil || u.Cart == nil {
		return Result{}, errors.New("checkout: usecase not initialized")
	}
	if u.Cart.IsEmpty() {
		return Result{}, ErrEmptyCart
	}
	if ferr := form.Validate(u.now()); ferr != nil {
		return Result{}, ferr
	}

	// Outermost recovery: even if order assembly or persistence blows up,
	// the user still gets a fresh order id and an empty cart.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[checkout] place order recovered: %v", r)
			fallbackID := orderdom.NewID(u.now())
			u.Cart.Clear(ctx)
			res = Result{
				OrderID:   fallbackID,
				DisplayID: orderdom.DisplayID(fallbackID),
			}
			err = nil
		}
	}()

	items := u.Cart.Items()
	amounts := orderdom.ComputeAmounts(u.Cart.Subtotal())
	rawID := orderdom.NewID(u.now())

	o := u.buildOrder(rawID, form, identity, items, amounts)

	orderID := rawID
	persisted := false

	remoteID, saveErr := u.Orders.Create(ctx, o)
	if saveErr == nil {
		// The store-assigned id becomes the canonical order id.
		orderID = remoteID
		persisted = true
	} else {
		log.Printf("[checkout] save order to firestore failed: %v", saveErr)
		if aerr := u.Archive.Append(rawID, o); aerr != nil {
			log.Printf("[checkout] archive order locally failed id=%s: %v", rawID, aerr)
		}
	}

	u.Cart.Clear(ctx)

	u.sendConfirmation(ctx, o, orderID)

	return Result{
		OrderID:           orderID,
		DisplayID:         orderdom.DisplayID(orderID),
		PersistedRemotely: persisted,
	}, nil
}

func (u *Usecase) buildOrder(rawID string, form Form, identity *userdom.Identity, items []cartdom.LineItem, amounts orderdom.Amounts) *orderdom.Order {
	var userID *string
	if identity != nil && identity.UID != "" {
		uid := identity.UID
		userID = &uid
	}

	snapshots := make([]orderdom.ItemSnapshot, 0, len(items))
	for _, it := range items {
		snapshots = append(snapshots, orderdom.ItemSnapshot{
			ProductID:     it.ID,
			Name:          it.Name,
			Price:         it.EffectivePrice(),
			OriginalPrice: it.Price,
			Quantity:      it.Quantity,
			Image:         it.Image,
		})
	}

	payment := orderdom.Payment{
		Method: form.PaymentMethod,
		Status: orderdom.PaymentStatusProcessing,
	}
	if form.PaymentMethod == orderdom.PaymentMethodCOD {
		payment.Status = orderdom.PaymentStatusPending
	}
	// Last four only for card payments with a number entered; the field
	// stays absent from persisted documents otherwise.
	if form.PaymentMethod == orderdom.PaymentMethodCard {
		if digits := CardDigits(form.CardNumber); len(digits) >= 4 {
			payment.CardLastFour = digits[len(digits)-4:]
		}
	}

	return &orderdom.Order{
		ID: rawID,
		Customer: orderdom.Customer{
			FirstName: form.FirstName,
			LastName:  form.LastName,
			Email:     form.Email,
			Phone:     form.Phone,
			UserID:    userID,
		},
		ShippingAddress: orderdom.ShippingAddress{
			Address: form.Address,
			City:    form.City,
			State:   form.State,
			Pincode: form.Pincode,
		},
		Items:     snapshots,
		Payment:   payment,
		Amounts:   amounts,
		Notes:     form.Notes,
		Status:    orderdom.StatusPlaced,
		CreatedAt: u.now().UTC(),
	}
}

// sendConfirmation emails the order summary; failures are only logged.
func (u *Usecase) sendConfirmation(ctx context.Context, o *orderdom.Order, orderID string) {
	if u.Mailer == nil || o == nil || o.Customer.Email == "" {
		return
	}

	displayID := orderdom.DisplayID(orderID)
	body := fmt.Sprintf(
		"Thank you for your purchase!\n\nOrder %s\nItems: %d\nTotal: %d\n\nWe will notify you when your order ships.",
		displayID, len(o.Items), o.Amounts.Total,
	)
	if err := u.Mailer.Send(ctx, u.MailFrom, o.Customer.Email, "Your Sunshine Saree order "+displayID, body); err != nil {
		log.Printf("[checkout] confirmation mail failed order=%s: %v", displayID, err)
	}
}

func (u *Usecase) now() time.Time {
	if u != nil && u.Now != nil {
		return u.Now()
	}
	return time.Now()
}
