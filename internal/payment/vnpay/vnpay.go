// Package vnpay builds signed VNPay checkout URLs and verifies the
// parameters VNPay sends back on the return URL and the IPN callback.
package vnpay

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hospital-booking/internal/config"
)

const (
	Version  = "2.1.0"
	Command  = "pay"
	CurrCode = "VND"
	dateFmt  = "20060102150405"
)

// Gateway response codes that mean the customer paid.
const (
	ResponseSuccess    = "00"
	TransactionSuccess = "00"
)

// IPN acknowledgement codes.
const (
	RspConfirmed        = "00"
	RspOrderNotFound    = "01"
	RspAlreadyConfirmed = "02"
	RspInvalidAmount    = "04"
	RspInvalidChecksum  = "97"
	RspUnknownError     = "99"
)

var (
	ErrInvalidSignature = errors.New("invalid vnpay signature")
	ErrMissingSignature = errors.New("missing vnpay signature")
)

// gmt7 is the zone VNPay expects for create and expire dates.
var gmt7 = time.FixedZone("GMT+7", 7*3600)

// Client signs requests for one merchant terminal.
type Client struct {
	tmnCode    string
	hashSecret string
	payURL     string
	returnURL  string
	expiry     time.Duration
	now        func() time.Time
}

func NewClient(cfg config.VNPayConfig) *Client {
	expiry := cfg.Expiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	return &Client{
		tmnCode:    cfg.TmnCode,
		hashSecret: cfg.HashSecret,
		payURL:     cfg.PayURL,
		returnURL:  cfg.ReturnURL,
		expiry:     expiry,
		now:        time.Now,
	}
}

// PaymentRequest describes one checkout. Amount is in VND.
type PaymentRequest struct {
	TxnRef    string
	Amount    int64
	OrderInfo string
	IPAddr    string
	BankCode  string
	Locale    string
}

// BuildPaymentURL returns the URL the customer is redirected to.
func (c *Client) BuildPaymentURL(req PaymentRequest) (string, error) {
	if req.TxnRef == "" {
		return "", errors.New("txn ref is required")
	}
	if req.Amount <= 0 {
		return "", errors.New("amount must be positive")
	}
	locale := req.Locale
	if locale == "" {
		locale = "vn"
	}
	created := c.now().In(gmt7)

	params := url.Values{}
	params.Set("vnp_Version", Version)
	params.Set("vnp_Command", Command)
	params.Set("vnp_TmnCode", c.tmnCode)
	params.Set("vnp_Amount", strconv.FormatInt(req.Amount*100, 10))
	params.Set("vnp_CurrCode", CurrCode)
	params.Set("vnp_TxnRef", req.TxnRef)
	params.Set("vnp_OrderInfo", req.OrderInfo)
	params.Set("vnp_OrderType", "other")
	params.Set("vnp_Locale", locale)
	params.Set("vnp_ReturnUrl", c.returnURL)
	params.Set("vnp_IpAddr", req.IPAddr)
	params.Set("vnp_CreateDate", created.Format(dateFmt))
	params.Set("vnp_ExpireDate", created.Add(c.expiry).Format(dateFmt))
	if req.BankCode != "" {
		params.Set("vnp_BankCode", req.BankCode)
	}

	query := params.Encode()
	return c.payURL + "?" + query + "&vnp_SecureHash=" + c.sign(query), nil
}

// Result is the parsed outcome of a return or IPN callback.
type Result struct {
	TxnRef            string
	Amount            int64
	ResponseCode      string
	TransactionStatus string
	TransactionNo     string
	BankCode          string
	PayDate           time.Time
}

// Success reports whether VNPay says the money was captured.
func (r Result) Success() bool {
	return r.ResponseCode == ResponseSuccess && r.TransactionStatus == TransactionSuccess
}

// Verify checks the callback signature and parses the result. The amount
// is converted back to VND.
func (c *Client) Verify(query url.Values) (Result, error) {
	got := query.Get("vnp_SecureHash")
	if got == "" {
		return Result{}, ErrMissingSignature
	}

	signed := url.Values{}
	for k, vs := range query {
		if k == "vnp_SecureHash" || k == "vnp_SecureHashType" || !strings.HasPrefix(k, "vnp_") {
			continue
		}
		if len(vs) > 0 && vs[0] != "" {
			signed.Set(k, vs[0])
		}
	}
	want := c.sign(signed.Encode())
	if !hmac.Equal([]byte(strings.ToLower(got)), []byte(want)) {
		return Result{}, ErrInvalidSignature
	}

	amount, err := strconv.ParseInt(query.Get("vnp_Amount"), 10, 64)
	if err != nil {
		return Result{}, fmt.Errorf("invalid vnp_Amount: %w", err)
	}
	res := Result{
		TxnRef:            query.Get("vnp_TxnRef"),
		Amount:            amount / 100,
		ResponseCode:      query.Get("vnp_ResponseCode"),
		TransactionStatus: query.Get("vnp_TransactionStatus"),
		TransactionNo:     query.Get("vnp_TransactionNo"),
		BankCode:          query.Get("vnp_BankCode"),
	}
	if pd := query.Get("vnp_PayDate"); pd != "" {
		if t, err := time.ParseInLocation(dateFmt, pd, gmt7); err == nil {
			res.PayDate = t
		}
	}
	return res, nil
}

func (c *Client) sign(data string) string {
	mac := hmac.New(sha512.New, []byte(c.hashSecret))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
