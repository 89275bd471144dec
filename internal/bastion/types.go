package bastion

import "time"

const bastionTimestampLayout = "2006-01-02 15:04:05"

// StatusResponse mirrors the payload returned by /api/status.
type StatusResponse struct {
	Running       bool             `json:"running"`
	Version       string           `json:"version"`
	PID           int              `json:"pid"`
	ResourceStats map[string]int   `json:"resourceStats"`
	LastError     string           `json:"lastError"`
	Authorities   []AuthorityCheck `json:"authorities"`
}

// AuthorityCheck reports the health of one configured authority backend.
type AuthorityCheck struct {
	Name   string `json:"name"`
	Ready  bool   `json:"ready"`
	Detail string `json:"detail"`
}

// CertificateListResponse mirrors /api/certificates.
type CertificateListResponse struct {
	Items []Certificate `json:"items"`
}

// Certificate describes one issued certificate in transport-friendly form.
type Certificate struct {
	ID           int64    `json:"id"`
	CommonName   string   `json:"commonName"`
	SerialNumber string   `json:"serialNumber"`
	Status       string   `json:"status"` // valid, expiring, expired, revoked
	Issuer       string   `json:"issuer"`
	Template     string   `json:"template"`
	KeyType      string   `json:"keyType"`
	SANs         []string `json:"sans"`
	NotBefore    string   `json:"notBefore"`
	NotAfter     string   `json:"notAfter"`
	RevokedAt    string   `json:"revokedAt"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// ParsedNotAfter returns the expiry timestamp when parsable.
func (c Certificate) ParsedNotAfter() time.Time {
	return parseTime(c.NotAfter)
}

// ParsedUpdatedAt returns the parsed UpdatedAt timestamp.
func (c Certificate) ParsedUpdatedAt() time.Time {
	return parseTime(c.UpdatedAt)
}

// AuthorityListResponse mirrors /api/authorities.
type AuthorityListResponse struct {
	Items []Authority `json:"items"`
}

// Authority describes a certificate authority known to the daemon.
type Authority struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Kind             string `json:"kind"` // root, intermediate
	Status           string `json:"status"`
	SubjectDN        string `json:"subjectDn"`
	SerialNumber     string `json:"serialNumber"`
	NotAfter         string `json:"notAfter"`
	IssuedCount      int    `json:"issuedCount"`
	CRLLastPublished string `json:"crlLastPublished"`
}

// SigningRequestListResponse mirrors /api/requests.
type SigningRequestListResponse struct {
	Items []SigningRequest `json:"items"`
}

// SigningRequest describes a pending or resolved CSR.
type SigningRequest struct {
	ID          int64  `json:"id"`
	CommonName  string `json:"commonName"`
	Requester   string `json:"requester"`
	Status      string `json:"status"` // pending, approved, denied, issued
	Template    string `json:"template"`
	KeyType     string `json:"keyType"`
	SubmittedAt string `json:"submittedAt"`
}

// TemplateListResponse mirrors /api/templates.
type TemplateListResponse struct {
	Items []Template `json:"items"`
}

// Template describes an issuance profile.
type Template struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Authority    string `json:"authority"`
	KeyType      string `json:"keyType"`
	ValidityDays int    `json:"validityDays"`
	Usage        string `json:"usage"` // server, client, code-signing
	UpdatedAt    string `json:"updatedAt"`
}

// TrustAnchorListResponse mirrors /api/truststore.
type TrustAnchorListResponse struct {
	Items []TrustAnchor `json:"items"`
}

// TrustAnchor describes one entry in the daemon's trust store.
type TrustAnchor struct {
	ID          int64  `json:"id"`
	SubjectDN   string `json:"subjectDn"`
	Fingerprint string `json:"fingerprint"`
	Source      string `json:"source"` // system, imported
	NotAfter    string `json:"notAfter"`
	AddedAt     string `json:"addedAt"`
}

// ApprovalListResponse mirrors /api/approvals.
type ApprovalListResponse struct {
	Items []Approval `json:"items"`
}

// Approval describes a pending administrative approval request.
type Approval struct {
	ID          int64  `json:"id"`
	Kind        string `json:"kind"` // issue, revoke, renew
	Subject     string `json:"subject"`
	RequestedBy string `json:"requestedBy"`
	Reason      string `json:"reason"`
	Status      string `json:"status"` // pending, approved, denied
	RequestedAt string `json:"requestedAt"`
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation(bastionTimestampLayout, value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}
