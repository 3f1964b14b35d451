package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"digipasal-be/internal/config"
	"digipasal-be/internal/invoice"
	"digipasal-be/internal/middleware"
	"digipasal-be/internal/notify"
	"digipasal-be/internal/order"
	"digipasal-be/internal/payment"
	"digipasal-be/internal/user"
	"digipasal-be/internal/utils"

	"github.com/gin-gonic/gin"
)

type orderHandler struct {
	svc      order.Service
	userSvc  user.Service
	cfg      *config.Config
	notifier *notify.Client
}

func newOrderHandler(svc order.Service, userSvc user.Service, cfg *config.Config, notifier *notify.Client) *orderHandler {
	return &orderHandler{svc: svc, userSvc: userSvc, cfg: cfg, notifier: notifier}
}

type checkoutRequest struct {
	PaymentMethod   string `json:"payment_method" binding:"required"`
	ShippingAddress string `json:"shipping_address"`
	Phone           string `json:"phone"`
}

type paymentView struct {
	Method       string   `json:"method"`
	Account      string   `json:"account"`
	Instructions []string `json:"instructions"`
}

type orderView struct {
	ID              string       `json:"id"`
	Status          string       `json:"status"`
	PaymentMethod   string       `json:"payment_method"`
	ShippingAddress string       `json:"shipping_address,omitempty"`
	Phone           string       `json:"phone,omitempty"`
	Items           []order.Item `json:"items"`
	Total           int64        `json:"total"`
	TotalDisplay    string       `json:"total_display"`
	CreatedAt       time.Time    `json:"created_at"`
}

func newOrderView(o *order.Order) orderView {
	return orderView{
		ID:              o.ID,
		Status:          string(o.Status),
		PaymentMethod:   o.PaymentMethod,
		ShippingAddress: o.ShippingAddress,
		Phone:           o.Phone,
		Items:           o.Items,
		Total:           o.Total(),
		TotalDisplay:    utils.FormatNPR(o.Total()),
		CreatedAt:       o.CreatedAt,
	}
}

// itemSummary flattens the line items for the confirmation message,
// e.g. "Netflix x1, Spotify x2".
func itemSummary(o *order.Order) string {
	parts := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		parts = append(parts, fmt.Sprintf("%s x%d", item.Title, item.Quantity))
	}
	return strings.Join(parts, ", ")
}

func (h *orderHandler) confirmationDetails(o *order.Order, au middleware.AuthUser) payment.ConfirmationDetails {
	method, _ := payment.Lookup(o.PaymentMethod)
	label := method.Label
	if label == "" {
		label = o.PaymentMethod
	}

	return payment.ConfirmationDetails{
		Name:        au.Name,
		Email:       au.Email,
		MethodLabel: label,
		Amount:      o.Total(),
		Account:     method.Account,
		ItemSummary: itemSummary(o),
	}
}

// Checkout places the order and returns everything the customer needs
// to complete the manual payment: instruction steps and the WhatsApp
// confirmation link.
func (h *orderHandler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	au, _ := middleware.CurrentUser(c)

	o, err := h.svc.Checkout(c.Request.Context(), order.CheckoutParams{
		UserID:          au.ID,
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: req.ShippingAddress,
		Phone:           req.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	method, _ := payment.Lookup(o.PaymentMethod)
	steps := payment.InjectVariables(
		payment.GetInstructions(o.PaymentMethod),
		payment.InstructionVars{
			"amount":  utils.FormatNPR(o.Total()),
			"account": method.Account,
		},
	)

	// The admin notification and auto-reply are best-effort; a failed
	// send never fails a placed order.
	notification := "sent"
	if h.notifier != nil {
		total := o.Total()
		err := h.notifier.SendCheckout(c.Request.Context(), notify.FormMessage{
			Name:          au.Name,
			Email:         au.Email,
			Message:       itemSummary(o),
			PaymentMethod: o.PaymentMethod,
			Amount:        &total,
		})
		if err != nil {
			notification = "failed"
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"order": newOrderView(o),
		"payment": paymentView{
			Method:       o.PaymentMethod,
			Account:      method.Account,
			Instructions: steps,
		},
		"whatsapp_link": payment.WhatsAppLink(h.cfg.WhatsAppNumber, h.confirmationDetails(o, au)),
		"notification":  notification,
	})
}

func (h *orderHandler) List(c *gin.Context) {
	au, _ := middleware.CurrentUser(c)

	orders, err := h.svc.ListOrders(c.Request.Context(), au.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}
	c.JSON(http.StatusOK, gin.H{"orders": views})
}

// fetchOrder resolves the path order for the current user, enforcing
// the owner check inside the service.
func (h *orderHandler) fetchOrder(c *gin.Context) (*order.Order, middleware.AuthUser, bool) {
	au, _ := middleware.CurrentUser(c)

	o, err := h.svc.GetOrder(c.Request.Context(), au.ID, c.Param("id"), au.Role == string(user.RoleAdmin))
	if err != nil {
		respondError(c, err)
		return nil, au, false
	}
	return o, au, true
}

func (h *orderHandler) Get(c *gin.Context) {
	o, _, ok := h.fetchOrder(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":    newOrderView(o),
		"timeline": order.ProjectTimeline(o.Status),
	})
}

func (h *orderHandler) Timeline(c *gin.Context) {
	o, _, ok := h.fetchOrder(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, order.ProjectTimeline(o.Status))
}

// Invoice renders the order as a downloadable self-contained HTML
// document.
func (h *orderHandler) Invoice(c *gin.Context) {
	o, _, ok := h.fetchOrder(c)
	if !ok {
		return
	}

	owner, err := h.userSvc.GetByID(c.Request.Context(), o.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	doc, err := invoice.Build(o, &owner, invoice.StoreInfo{
		Name:         h.cfg.StoreName,
		SupportEmail: h.cfg.SupportEmail,
		WhatsApp:     h.cfg.WhatsAppNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc.HTML))
}

func (h *orderHandler) WhatsAppLink(c *gin.Context) {
	o, au, ok := h.fetchOrder(c)
	if !ok {
		return
	}

	details := h.confirmationDetails(o, au)
	c.JSON(http.StatusOK, gin.H{
		"link":    payment.WhatsAppLink(h.cfg.WhatsAppNumber, details),
		"message": payment.ConfirmationMessage(details),
	})
}
