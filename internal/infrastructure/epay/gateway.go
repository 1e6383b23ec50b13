package epay

import (
	"bytes"
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/mirola777/songboard/internal/domain"
)

const signTypeMD5 = "MD5"

var formTemplate = template.Must(template.New("epay").Parse(`<form id="epayForm" method="POST" action="{{.Action}}">
{{range .Fields}}<input type="hidden" name="{{.Name}}" value="{{.Value}}"/>
{{end}}</form>
<script>document.getElementById('epayForm').submit();</script>
`))

type formField struct {
	Name  string
	Value string
}

type Config struct {
	MerchantID  string
	MerchantKey string
	APIURL      string
	NotifyURL   string
	ReturnURL   string
}

type Gateway struct {
	cfg Config
}

func NewGateway(cfg Config) *Gateway {
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	return &Gateway{cfg: cfg}
}

// Sign computes md5(k1=v1&k2=v2...&kN=vN + key) over the non-empty
// parameters, excluding sign and sign_type, with keys sorted ascending.
func (g *Gateway) Sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if k == "sign" || k == "sign_type" || v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := md5.Sum([]byte(strings.Join(pairs, "&") + g.cfg.MerchantKey))
	return hex.EncodeToString(sum[:])
}

func (g *Gateway) BuildPaymentForm(order domain.PaymentOrder) (string, error) {
	if !domain.ValidPayMethods[order.PayMethod] {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidPayMethod, order.PayMethod)
	}

	params := map[string]string{
		"pid":          g.cfg.MerchantID,
		"type":         string(order.PayMethod),
		"out_trade_no": order.OrderID,
		"notify_url":   g.cfg.NotifyURL,
		"return_url":   g.cfg.ReturnURL,
		"name":         order.ItemName,
		"money":        order.Amount.StringFixed(2),
		"clientip":     order.ClientIP,
		"device":       "pc",
	}
	params["sign"] = g.Sign(params)
	params["sign_type"] = signTypeMD5

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]formField, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, formField{Name: k, Value: params[k]})
	}

	var buf bytes.Buffer
	err := formTemplate.Execute(&buf, struct {
		Action string
		Fields []formField
	}{
		Action: g.cfg.APIURL + "/submit.php",
		Fields: fields,
	})
	if err != nil {
		return "", fmt.Errorf("render payment form: %w", err)
	}
	return buf.String(), nil
}

// VerifyCallback fails closed on a missing signature or a non-MD5 sign_type.
func (g *Gateway) VerifyCallback(params map[string]string) bool {
	sign := params["sign"]
	if sign == "" || params["sign_type"] != signTypeMD5 {
		return false
	}
	expected := g.Sign(params)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(sign)) == 1
}
