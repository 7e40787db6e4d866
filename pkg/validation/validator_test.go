package validation

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
)

func init() {
	Init()
}

type sampleRequest struct {
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,pwd"`
	Type     string   `json:"type" binding:"required,listingtype"`
	Images   []string `json:"imageUrls" binding:"required,min=1,max=6"`
}

func TestToDetailsUsesJSONFieldNames(t *testing.T) {
	req := sampleRequest{
		Email:    "not-an-email",
		Password: "short",
		Type:     "lease",
	}
	err := binding.Validator.ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	details := ToDetails(err)
	if details == nil {
		t.Fatal("nil details")
	}
	for _, field := range []string{"email", "password", "type", "imageUrls"} {
		if _, ok := details[field]; !ok {
			t.Errorf("details missing %q: %v", field, details)
		}
	}
	if _, ok := details["Email"]; ok {
		t.Error("struct field name leaked instead of json tag")
	}
}

func TestToDetailsMessages(t *testing.T) {
	req := sampleRequest{
		Email:    "jane@example.com",
		Password: "short",
		Type:     "lease",
		Images:   []string{"https://cdn.havenly.dev/1.jpg"},
	}
	err := binding.Validator.ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	details := ToDetails(err)
	if msg := details["password"]; !strings.Contains(msg, "6") {
		t.Errorf("password message %q should mention the minimum length", msg)
	}
	if msg := details["type"]; !strings.Contains(msg, "sale") || !strings.Contains(msg, "rent") {
		t.Errorf("type message %q should list allowed values", msg)
	}
}

func TestToDetailsNil(t *testing.T) {
	if d := ToDetails(nil); d != nil {
		t.Errorf("ToDetails(nil) = %v, want nil", d)
	}
}

func TestToDetailsValid(t *testing.T) {
	req := sampleRequest{
		Email:    "jane@example.com",
		Password: "password123",
		Type:     "sale",
		Images:   []string{"https://cdn.havenly.dev/1.jpg"},
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		t.Errorf("valid struct rejected: %v", err)
	}
}
