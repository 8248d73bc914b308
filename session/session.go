package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const TTL = 30 * 24 * time.Hour

// Payload is what the signed session token carries. Only the fields valid
// for the role are set; use the constructors below instead of filling the
// struct by hand.
type Payload struct {
	Role       string `json:"role"` // "director" | "teacher" | "student"
	ID         uint   `json:"id"`
	Name       string `json:"name,omitempty"`
	Code       string `json:"code,omitempty"`
	ClassLevel string `json:"class_level,omitempty"`
	Room       string `json:"room,omitempty"`
}

func DirectorPayload(id uint, name string) Payload {
	return Payload{Role: "director", ID: id, Name: name}
}

func TeacherPayload(id uint, name, code string) Payload {
	return Payload{Role: "teacher", ID: id, Name: name, Code: code}
}

func StudentPayload(id uint, name, code, classLevel, room string) Payload {
	return Payload{Role: "student", ID: id, Name: name, Code: code, ClassLevel: classLevel, Room: room}
}

type claims struct {
	Payload
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens (HS256, fixed 30-day expiry).
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

func (cd *Codec) Issue(p Payload) (string, error) {
	now := time.Now()
	cl := claims{
		Payload: p,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString(cd.secret)
}

// Verify checks signature and expiry. It never returns an error: any invalid,
// tampered or expired token comes back as nil and the caller treats that as
// "unauthenticated".
func (cd *Codec) Verify(token string) *Payload {
	var cl claims
	tk, err := jwt.ParseWithClaims(token, &cl, func(t *jwt.Token) (any, error) {
		// reject alg swapping
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return cd.secret, nil
	})
	if err != nil || !tk.Valid {
		return nil
	}
	if cl.ExpiresAt != nil && time.Now().After(cl.ExpiresAt.Time) {
		return nil
	}
	p := cl.Payload
	return &p
}
