package validators

import (
	"context"
	"net"
	"net/mail"
	"strings"
	"time"
)

// LookupTimeout limita a consulta de DNS de IsEmailDomainValid.
const LookupTimeout = 3 * time.Second

// LooksLikeEmail faz só a checagem sintática, sem rede.
func LooksLikeEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email && strings.Contains(email[strings.LastIndex(email, "@"):], ".")
}

// IsEmailDomainValid aceita o domínio com registro MX ou, na falta dele,
// com algum endereço IP.
func IsEmailDomainValid(ctx context.Context, email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(ctx, LookupTimeout)
	defer cancel()

	if mx, err := net.DefaultResolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.DefaultResolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
