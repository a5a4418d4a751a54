package invoicing

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/Pivvot-Consulting/billing-form/internal/domain/entities"
	"github.com/Pivvot-Consulting/billing-form/internal/usecase/interfaces"
	"github.com/Pivvot-Consulting/billing-form/pkg/tax"
)

var (
	ErrMissingSiigoCredentials = errors.New("missing SIIGO_USERNAME or SIIGO_ACCESS_KEY")
	ErrSiigoAuthFailed         = errors.New("siigo authentication failed")
	ErrSiigoInvoiceRejected    = errors.New("siigo rejected the invoice")
)

// Document id types as Siigo catalogs them.
var siigoIDTypes = map[string]string{
	"CC":        "13",
	"NIT":       "31",
	"Pasaporte": "41",
}

// SiigoGateway issues electronic invoices through the Siigo REST API.
//
// There is no official Go SDK, so this is a thin client over the two
// endpoints the service needs: POST /auth and POST /v1/invoices. The
// bearer token is cached until its JWT exp claim and refreshed
// transparently on the next call.

type SiigoGateway struct {
	httpClient *http.Client
	baseURL    string
	username   string
	accessKey  string
	partnerID  string

	documentID    int
	sellerID      int
	paymentTypeID int
	costCenter    int
	sendTaxes     bool

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

var _ interfaces.IInvoiceGateway = (*SiigoGateway)(nil)

// NewSiigoGatewayFromEnv builds the gateway from SIIGO_* environment
// variables. Returns an error when credentials are absent, so the caller
// can run without invoicing instead of failing every sale.
func NewSiigoGatewayFromEnv() (*SiigoGateway, error) {
	username := os.Getenv("SIIGO_USERNAME")
	accessKey := os.Getenv("SIIGO_ACCESS_KEY")
	if username == "" || accessKey == "" {
		return nil, ErrMissingSiigoCredentials
	}

	g := &SiigoGateway{
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		baseURL:       strings.TrimRight(getenvDefault("SIIGO_API_URL", "https://api.siigo.com"), "/"),
		username:      username,
		accessKey:     accessKey,
		partnerID:     getenvDefault("SIIGO_PARTNER_ID", "BillingForm"),
		documentID:    getenvIntDefault("SIIGO_DOCUMENT_ID", 0),
		sellerID:      getenvIntDefault("SIIGO_SELLER_ID", 0),
		paymentTypeID: getenvIntDefault("SIIGO_PAYMENT_TYPE_ID", 0),
		costCenter:    getenvIntDefault("SIIGO_COST_CENTER", 0),
		sendTaxes:     getenvBool("SIIGO_SEND_TAXES"),
	}
	log.Printf("[invoice][gateway] siigo client initialized base_url=%s send_taxes=%t", g.baseURL, g.sendTaxes)
	return g, nil
}

type siigoAuthRequest struct {
	Username  string `json:"username"`
	AccessKey string `json:"access_key"`
}

type siigoAuthResponse struct {
	AccessToken string `json:"access_token"`
}

type siigoInvoiceRequest struct {
	Document   siigoDocumentRef `json:"document"`
	Date       string           `json:"date"`
	Customer   siigoCustomer    `json:"customer"`
	Seller     int              `json:"seller,omitempty"`
	CostCenter int              `json:"cost_center,omitempty"`
	Stamp      siigoSend        `json:"stamp"`
	Mail       siigoSend        `json:"mail"`
	Items      []siigoItem      `json:"items"`
	Payments   []siigoPayment   `json:"payments"`
}

type siigoDocumentRef struct {
	ID int `json:"id"`
}

type siigoSend struct {
	Send bool `json:"send"`
}

type siigoCustomer struct {
	PersonType     string         `json:"person_type"`
	IDType         string         `json:"id_type"`
	Identification string         `json:"identification"`
	Name           []string       `json:"name"`
	Address        siigoAddress   `json:"address"`
	Phones         []siigoPhone   `json:"phones"`
	Contacts       []siigoContact `json:"contacts"`
}

type siigoAddress struct {
	Address string    `json:"address"`
	City    siigoCity `json:"city"`
}

// City block fixed to Barranquilla, where the scooter fleet operates.
type siigoCity struct {
	CountryCode string `json:"country_code"`
	StateCode   string `json:"state_code"`
	CityCode    string `json:"city_code"`
}

type siigoPhone struct {
	Number string `json:"number"`
}

type siigoContact struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type siigoItem struct {
	Code        string         `json:"code"`
	Description string         `json:"description"`
	Quantity    int            `json:"quantity"`
	Price       float64        `json:"price"`
	Taxes       []siigoItemTax `json:"taxes"`
}

type siigoItemTax struct {
	ID int `json:"id"`
}

type siigoPayment struct {
	ID      int     `json:"id"`
	Value   float64 `json:"value"`
	DueDate string  `json:"due_date"`
}

type siigoInvoiceResponse struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	Name   string `json:"name"`
}

func (g *SiigoGateway) IssueInvoice(ctx context.Context, req interfaces.InvoiceRequest) (interfaces.InvoiceReference, error) {
	token, err := g.authToken(ctx)
	if err != nil {
		return interfaces.InvoiceReference{}, err
	}

	payload := g.buildInvoice(req, time.Now().UTC())
	body, err := json.Marshal(payload)
	if err != nil {
		return interfaces.InvoiceReference{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/invoices", bytes.NewReader(body))
	if err != nil {
		return interfaces.InvoiceReference{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Partner-Id", g.partnerID)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[invoice][gateway] invoice request failed err=%v", err)
		return interfaces.InvoiceReference{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return interfaces.InvoiceReference{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[invoice][gateway] invoice rejected status=%d body=%s", resp.StatusCode, truncate(raw, 512))
		return interfaces.InvoiceReference{}, fmt.Errorf("%w: status %d", ErrSiigoInvoiceRejected, resp.StatusCode)
	}

	var parsed siigoInvoiceResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return interfaces.InvoiceReference{}, err
	}

	number := parsed.Name
	if number == "" && parsed.Number != 0 {
		number = fmt.Sprintf("%d", parsed.Number)
	}
	if number == "" {
		number = parsed.ID
	}
	log.Printf("[invoice][gateway] invoice issued number=%s", number)
	return interfaces.InvoiceReference{Number: number, Raw: raw}, nil
}

func (g *SiigoGateway) buildInvoice(req interfaces.InvoiceRequest, now time.Time) siigoInvoiceRequest {
	code := entities.ProductCodeByTime(req.Hours, req.Minutes)
	description := entities.ServiceDescriptionByTime(req.Hours, req.Minutes)

	item := siigoItem{
		Code:        code,
		Description: description,
		Quantity:    1,
		Price:       req.ServiceValue,
		Taxes:       []siigoItemTax{},
	}
	if g.sendTaxes {
		calc, err := tax.FromFinalPrice(req.ServiceValue, tax.IVARate)
		if err == nil {
			item.Price = calc.BasePrice
			item.Taxes = []siigoItemTax{{ID: tax.SiigoTaxIDIVA19}}
		}
	}

	idType, ok := siigoIDTypes[req.DocumentType]
	if !ok {
		idType = siigoIDTypes["CC"]
	}

	return siigoInvoiceRequest{
		Document:   siigoDocumentRef{ID: g.documentID},
		Date:       now.Format("2006-01-02"),
		Seller:     g.sellerID,
		CostCenter: g.costCenter,
		Customer: siigoCustomer{
			PersonType:     "Person",
			IDType:         idType,
			Identification: req.DocumentNumber,
			Name:           []string{req.Name, req.LastName},
			Address: siigoAddress{
				Address: req.Address,
				City: siigoCity{
					CountryCode: "Co",
					StateCode:   "08",
					CityCode:    "08001",
				},
			},
			Phones: []siigoPhone{{Number: req.Phone}},
			Contacts: []siigoContact{{
				FirstName: req.Name,
				LastName:  req.LastName,
				Email:     req.Email,
			}},
		},
		Stamp: siigoSend{Send: true},
		Mail:  siigoSend{Send: true},
		Items: []siigoItem{item},
		Payments: []siigoPayment{{
			ID:      g.paymentTypeID,
			Value:   req.ServiceValue,
			DueDate: now.Format("2006-01-02"),
		}},
	}
}

// authToken returns a valid bearer token, re-authenticating when the
// cached one is within a minute of its exp claim.
func (g *SiigoGateway) authToken(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.token != "" && time.Now().Before(g.tokenExpiry.Add(-time.Minute)) {
		return g.token, nil
	}

	body, err := json.Marshal(siigoAuthRequest{Username: g.username, AccessKey: g.accessKey})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/auth", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Partner-Id", g.partnerID)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[invoice][gateway] auth request failed err=%v", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		log.Printf("[invoice][gateway] auth rejected status=%d body=%s", resp.StatusCode, truncate(raw, 256))
		return "", fmt.Errorf("%w: status %d", ErrSiigoAuthFailed, resp.StatusCode)
	}

	var parsed siigoAuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if parsed.AccessToken == "" {
		return "", ErrSiigoAuthFailed
	}

	g.token = parsed.AccessToken
	g.tokenExpiry = jwtExpiry(parsed.AccessToken, time.Now().Add(10*time.Minute))
	log.Printf("[invoice][gateway] authenticated token_expiry=%s", g.tokenExpiry.Format(time.RFC3339))
	return g.token, nil
}

// jwtExpiry reads the exp claim out of a JWT without verifying it; the
// token is only used against the issuer itself. Falls back when the
// token is not a parseable JWT.
func jwtExpiry(token string, fallback time.Time) time.Time {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return fallback
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return fallback
	}
	var claims struct {
		Exp int64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil || claims.Exp == 0 {
		return fallback
	}
	return time.Unix(claims.Exp, 0)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvIntDefault(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
		return def
	}
	return n
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
