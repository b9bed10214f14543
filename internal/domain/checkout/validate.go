package checkout

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"tinytreasures/internal/domain/model"

	"github.com/go-playground/validator/v10"
)

// フィールドごとのエラーメッセージ（キーはJSON名）
type FieldErrors map[string]string

var (
	validate *validator.Validate

	mobileRe  = regexp.MustCompile(`^[6-9]\d{9}$`)
	pincodeRe = regexp.MustCompile(`^\d{6}$`)
)

// trim済みの値に対するルール
type addressRules struct {
	FullName     string `json:"full_name" validate:"min=2,max=100"`
	Phone        string `json:"phone" validate:"in_mobile"`
	AddressLine1 string `json:"address_line1" validate:"min=5,max=200"`
	AddressLine2 string `json:"address_line2" validate:"max=200"`
	City         string `json:"city" validate:"min=2,max=100"`
	State        string `json:"state" validate:"min=2,max=100"`
	Pincode      string `json:"pincode" validate:"pincode"`
}

var messages = map[string]map[string]string{
	model.AddressFieldFullName: {
		"min": "Name must be at least 2 characters",
		"max": "Name must be at most 100 characters",
	},
	model.AddressFieldPhone: {
		"in_mobile": "Enter a valid 10-digit phone number",
	},
	model.AddressFieldAddressLine1: {
		"min": "Address is too short",
		"max": "Address must be at most 200 characters",
	},
	model.AddressFieldAddressLine2: {
		"max": "Address line 2 must be at most 200 characters",
	},
	model.AddressFieldCity: {
		"min": "City is required",
		"max": "City must be at most 100 characters",
	},
	model.AddressFieldState: {
		"min": "State is required",
		"max": "State must be at most 100 characters",
	},
	model.AddressFieldPincode: {
		"pincode": "Enter a valid 6-digit pincode",
	},
}

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	//エラーのField()をJSON名にする
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister("in_mobile", mobileRe)
	mustRegister("pincode", pincodeRe)
}

func mustRegister(tag string, re *regexp.Regexp) {
	err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// ValidateAddress は全フィールドを個別に検証し、失敗したものを全部返す。
// 問題なければ空のFieldErrors。
func ValidateAddress(a model.Address) FieldErrors {
	rules := addressRules{
		FullName:     strings.TrimSpace(a.FullName),
		Phone:        strings.TrimSpace(a.Phone),
		AddressLine1: strings.TrimSpace(a.AddressLine1),
		AddressLine2: strings.TrimSpace(a.AddressLine2),
		City:         strings.TrimSpace(a.City),
		State:        strings.TrimSpace(a.State),
		Pincode:      strings.TrimSpace(a.Pincode),
	}

	out := FieldErrors{}

	err := validate.Struct(rules)
	if err == nil {
		return out
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		//ここに来るのはルール定義の不備だけ
		panic(err)
	}

	for _, fe := range verrs {
		field := fe.Field()
		if _, done := out[field]; done {
			continue
		}
		out[field] = message(field, fe.Tag())
	}
	return out
}

func message(field, tag string) string {
	if m, ok := messages[field][tag]; ok {
		return m
	}
	return "Invalid value"
}
