package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// DNSLookupTimeout bounds the MX/A lookups of a single e-mail check.
const DNSLookupTimeout = 3 * time.Second

// Resolver is the subset of *net.Resolver used by the e-mail check.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

func IsEmailDomainValid(email string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), DNSLookupTimeout)
	defer cancel()
	return EmailDomainAccepts(ctx, net.DefaultResolver, email)
}

// EmailDomainAccepts reports whether the domain of email has an MX record,
// or at least an address to fall back to.
func EmailDomainAccepts(ctx context.Context, r Resolver, email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := strings.ToLower(strings.TrimSpace(email[at+1:]))
	if !strings.Contains(domain, ".") {
		return false
	}

	if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := r.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
