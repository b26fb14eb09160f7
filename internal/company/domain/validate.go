package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	panRe   = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`)
	gstRe   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	ifscRe  = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool { return emailRe.MatchString(s) }

// ValidPAN reports whether s matches the AAAAA0000A PAN format.
func ValidPAN(s string) bool { return panRe.MatchString(s) }

// ValidGST reports whether s matches the 22AAAAA0000A1Z5 GST format.
func ValidGST(s string) bool { return gstRe.MatchString(s) }

// ValidIFSC reports whether s matches the bank IFSC code format.
func ValidIFSC(s string) bool { return ifscRe.MatchString(s) }

// ValidateCreateCompany checks a create payload before any backend call and
// returns the first failure message. industryValid decides whether a nonzero
// industry code belongs to the closed classification set.
func ValidateCreateCompany(req CreateCompanyRequest, industryValid func(int32) bool) (string, bool) {
	required := []struct {
		name  string
		value string
	}{
		{"companyName", req.CompanyName},
		{"companyId", req.CompanyID},
		{"email", req.Email},
		{"phone", req.Phone},
		{"address", req.Address},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Sprintf("%s is required", f.name), false
		}
	}

	if req.Industry == nil {
		return "industry is required", false
	}
	if *req.Industry == 0 || !industryValid(*req.Industry) {
		return "Please select a valid industry", false
	}

	if !ValidEmail(req.Email) {
		return "Please enter a valid email address", false
	}

	if req.Metadata != nil {
		if req.Metadata.PAN != "" && !ValidPAN(req.Metadata.PAN) {
			return "Invalid PAN format. Should be AAAAA0000A", false
		}
		if req.Metadata.GST != "" && !ValidGST(req.Metadata.GST) {
			return "Invalid GST format. Should be 22AAAAA0000A1Z5", false
		}
		if req.Metadata.Banking != nil && req.Metadata.Banking.IFSCCode != "" && !ValidIFSC(req.Metadata.Banking.IFSCCode) {
			return "Invalid IFSC code format", false
		}
	}

	return "", true
}
