package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Amounts go over the wire as JSON numbers.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type RequestStatus string

const (
	RequestStatusPending RequestStatus = "pending"
	RequestStatusPlayed  RequestStatus = "played"
)

var ValidRequestStatuses = map[RequestStatus]bool{
	RequestStatusPending: true,
	RequestStatusPlayed:  true,
}

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

type PayMethod string

const (
	PayMethodAlipay PayMethod = "alipay"
	PayMethodWxpay  PayMethod = "wxpay"
)

var ValidPayMethods = map[PayMethod]bool{
	PayMethodAlipay: true,
	PayMethodWxpay:  true,
}

// TradeStatusSuccess is the gateway trade_status reported for a settled payment.
const TradeStatusSuccess = "TRADE_SUCCESS"

type Track struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	ArtistName    string `json:"artistName"`
	CoverImageURL string `json:"coverImageUrl"`
}

type TrackQuery struct {
	SongName       string `json:"songName"`
	CatalogTrackID string `json:"catalogTrackId"`
	CatalogURL     string `json:"catalogUrl"`
}

type SubmitRequest struct {
	RequesterNameLocal string `json:"requesterNameLocal"`
	RequesterNameAlt   string `json:"requesterNameAlt"`
	SongTitle          string `json:"songTitle"`
	Artist             string `json:"artist"`
	CoverImageURL      string `json:"coverImageUrl"`
	CatalogTrackID     string `json:"catalogTrackId"`
}

type SongRequest struct {
	ID                 uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	RequesterNameLocal string          `json:"requester_name_local" gorm:"type:varchar(16);not null"`
	RequesterNameAlt   string          `json:"requester_name_alt" gorm:"type:varchar(100);not null"`
	SongTitle          string          `json:"song_title" gorm:"type:varchar(255);not null"`
	Artist             string          `json:"artist" gorm:"type:varchar(255);not null"`
	CoverImageURL      string          `json:"cover_image_url" gorm:"type:text"`
	CatalogTrackID     *string         `json:"catalog_track_id" gorm:"type:varchar(64)"`
	Status             RequestStatus   `json:"status" gorm:"type:varchar(16);not null;default:pending"`
	Priority           int             `json:"priority" gorm:"not null;default:0;index:idx_song_requests_queue,priority:1"`
	PaymentStatus      PaymentStatus   `json:"payment_status" gorm:"type:varchar(16);not null;default:unpaid"`
	PaymentAmount      decimal.Decimal `json:"payment_amount" gorm:"type:decimal(10,2);not null"`
	PaymentTime        *time.Time      `json:"payment_time"`
	CreatedAt          time.Time       `json:"created_at" gorm:"autoCreateTime;index:idx_song_requests_queue,priority:2"`
}

func (SongRequest) TableName() string {
	return "song_requests"
}

// PaymentOrder is what the gateway needs to render a checkout form.
type PaymentOrder struct {
	OrderID   string
	Amount    decimal.Decimal
	ItemName  string
	PayMethod PayMethod
	ClientIP  string
}

type PaymentSummary struct {
	PaymentStatus PaymentStatus   `json:"payment_status"`
	PaymentAmount decimal.Decimal `json:"payment_amount"`
}

type ConfirmationResult struct {
	RequestID uint            `json:"request_id"`
	Amount    decimal.Decimal `json:"amount"`
	PaidAt    time.Time       `json:"paid_at"`
}
