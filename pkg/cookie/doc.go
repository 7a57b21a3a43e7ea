// Package cookie provides HTTP cookie management with optional signing and encryption.
//
// The Manager handles plain, signed, and encrypted cookies, plus read-once
// flash messages. Secrets are optional; signed and encrypted operations
// return [ErrNoSecret] without one.
//
// Plain cookies work without a secret:
//
//	m := cookie.New()
//	m.Set(w, "theme", "dark", 86400)
//	value, err := m.Get(r, "theme")
//
// Signed cookies detect tampering with HMAC-SHA256; a cookie whose
// signature does not verify yields [ErrBadSig]:
//
//	m := cookie.New(cookie.WithSecret("your-32+-byte-secret-key-here!!"))
//	err := m.SetSigned(w, "session", token, 0)
//	token, err := m.GetSigned(r, "session")
//
// Encrypted cookies use AES-256-GCM with a key derived from the secret:
//
//	err := m.SetEncrypted(w, "state", payload, 0)
//
// Flash messages are encrypted cookies deleted on first read:
//
//	_ = m.SetFlash(w, "notice", map[string]string{"text": "saved"})
//	var notice map[string]string
//	err := m.Flash(w, r, "notice", &notice)
package cookie
