package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"

	"moveit-backend/internal/pkg/config"
	"moveit-backend/internal/pkg/errs"

	"github.com/spf13/cast"
)

var (
	ErrGatewayRequest     = errs.New("payment gateway request failed")
	ErrGatewayRejected    = errs.New("payment gateway rejected the request")
	ErrTransactionMissing = errs.New("transaction not found at gateway")
)

// FlutterwaveClient talks to the Flutterwave v3 API. Every call runs under
// the configured timeout so a hung gateway cannot stall a request forever.
type FlutterwaveClient struct {
	cfg    config.GatewayConfig
	client *http.Client
}

func NewFlutterwaveClient(cfg config.GatewayConfig) *FlutterwaveClient {
	return &FlutterwaveClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type Customer struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type InitializeRequest struct {
	TxRef     string
	Amount    int64
	Customer  Customer
	Title     string
	Narrative string
}

type InitializeResult struct {
	PaymentLink string
}

// VerifiedTransaction is the gateway's record of a captured payment.
type VerifiedTransaction struct {
	TransactionID string
	TxRef         string
	Amount        int64
	Currency      string
	Status        string
}

type initializePayload struct {
	TxRef          string   `json:"tx_ref"`
	Amount         string   `json:"amount"`
	Currency       string   `json:"currency"`
	RedirectURL    string   `json:"redirect_url"`
	Customer       Customer `json:"customer"`
	Customizations struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"customizations"`
}

type apiEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// InitializePayment registers a hosted-payment session and returns the
// redirect link the app opens for the customer.
func (f *FlutterwaveClient) InitializePayment(ctx context.Context, req InitializeRequest) (*InitializeResult, error) {
	payload := initializePayload{
		TxRef:       req.TxRef,
		Amount:      cast.ToString(req.Amount),
		Currency:    f.cfg.Currency,
		RedirectURL: f.cfg.RedirectURL,
		Customer:    req.Customer,
	}
	payload.Customizations.Title = req.Title
	payload.Customizations.Description = req.Narrative

	env, err := f.post(ctx, "/payments", payload)
	if err != nil {
		return nil, err
	}

	var data struct {
		Link string `json:"link"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, errs.Mark(err, ErrGatewayRequest)
	}

	return &InitializeResult{PaymentLink: data.Link}, nil
}

// VerifyTransaction fetches the gateway's own record of a transaction. The
// caller decides what the returned status means; nothing is assumed here.
func (f *FlutterwaveClient) VerifyTransaction(ctx context.Context, transactionID string) (*VerifiedTransaction, error) {
	env, err := f.get(ctx, fmt.Sprintf("/transactions/%s/verify", transactionID))
	if err != nil {
		return nil, err
	}

	var data struct {
		ID       any     `json:"id"`
		TxRef    string  `json:"tx_ref"`
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
		Status   string  `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, errs.Mark(err, ErrGatewayRequest)
	}
	if data.Amount != math.Trunc(data.Amount) {
		// Charges are created with whole-unit amounts; a fractional amount
		// coming back means this record cannot be compared safely.
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("gateway reported a fractional amount: %v", data.Amount)),
			ErrGatewayRequest,
		)
	}

	return &VerifiedTransaction{
		// Flutterwave returns the id as a JSON number
		TransactionID: cast.ToString(data.ID),
		TxRef:         data.TxRef,
		Amount:        int64(data.Amount),
		Currency:      data.Currency,
		Status:        data.Status,
	}, nil
}

func (f *FlutterwaveClient) post(ctx context.Context, path string, payload any) (*apiEnvelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayRequest)
	}
	return f.do(ctx, http.MethodPost, path, bytes.NewReader(body))
}

func (f *FlutterwaveClient) get(ctx context.Context, path string) (*apiEnvelope, error) {
	return f.do(ctx, http.MethodGet, path, nil)
}

func (f *FlutterwaveClient) do(ctx context.Context, method, path string, body io.Reader) (*apiEnvelope, error) {
	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, f.cfg.BaseURL+path, body)
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayRequest)
	}
	req.Header.Set("Authorization", "Bearer "+f.cfg.SecretKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayRequest)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayRequest)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrTransactionMissing
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("gateway returned %d: %s", resp.StatusCode, string(raw))),
			ErrGatewayRejected,
		)
	}

	var env apiEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errs.Mark(err, ErrGatewayRequest)
	}
	if env.Status != "success" {
		return nil, errs.Mark(errs.New("gateway error: "+env.Message), ErrGatewayRejected)
	}

	return &env, nil
}
