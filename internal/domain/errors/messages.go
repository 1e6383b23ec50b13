package errors

import "strings"

var messages = map[string]map[string]string{
	"en": {
		"INVALID_SONG_REQUEST":   "invalid song request",
		"INVALID_PAYMENT_METHOD": "payment method is not supported; valid methods: alipay, wxpay",
		"ADMIN_FORBIDDEN":        "admin secret is incorrect",
		"SONG_REQUEST_NOT_FOUND": "song request not found",
		"TRACK_NOT_FOUND":        "track not found in catalog",
		"REQUEST_ALREADY_PAID":   "song request has already been paid",
		"RATE_LIMITED":           "too many requests, slow down",
		"CATALOG_UNAVAILABLE":    "music catalog is temporarily unavailable",
		"PAYMENT_GATEWAY_ERROR":  "failed to create payment order",
		"INVALID_SIGNATURE":      "payment notification signature is invalid",
		"PAYMENT_NOT_SUCCESSFUL": "payment was not successful",
		"INVALID_ORDER_ID":       "payment order id is malformed",
		"INVALID_PAYMENT_AMOUNT": "payment amount is invalid",
		"INTERNAL_ERROR":         "an internal error occurred",
	},
	"zh": {
		"INVALID_SONG_REQUEST":   "点歌信息无效",
		"INVALID_PAYMENT_METHOD": "不支持的支付方式；可选：alipay, wxpay",
		"ADMIN_FORBIDDEN":        "管理员密码错误",
		"SONG_REQUEST_NOT_FOUND": "未找到该歌曲",
		"TRACK_NOT_FOUND":        "曲库中未找到该歌曲",
		"REQUEST_ALREADY_PAID":   "该点歌已支付",
		"RATE_LIMITED":           "请求过于频繁，请稍后再试",
		"CATALOG_UNAVAILABLE":    "曲库服务暂时不可用",
		"PAYMENT_GATEWAY_ERROR":  "创建支付订单失败",
		"INVALID_SIGNATURE":      "支付通知签名无效",
		"PAYMENT_NOT_SUCCESSFUL": "支付未成功",
		"INVALID_ORDER_ID":       "支付订单号格式错误",
		"INVALID_PAYMENT_AMOUNT": "支付金额无效",
		"INTERNAL_ERROR":         "服务器内部错误",
	},
}

func GetMessage(code string, lang string) string {
	base := strings.SplitN(lang, "-", 2)[0]
	base = strings.TrimSpace(strings.ToLower(base))

	if langMessages, ok := messages[base]; ok {
		if msg, ok := langMessages[code]; ok {
			return msg
		}
	}

	if base != "en" {
		if enMessages, ok := messages["en"]; ok {
			if msg, ok := enMessages[code]; ok {
				return msg
			}
		}
	}

	return code
}

func Localize(err *AppError, lang string) *AppError {
	return &AppError{
		Code:     err.Code,
		Message:  withDetail(GetMessage(err.Code, lang), err.Detail),
		HTTPCode: err.HTTPCode,
		Detail:   err.Detail,
		cause:    err.cause,
	}
}
