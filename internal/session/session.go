package session

import (
	"context"
	"time"
)

// DefaultTTL mengikuti umur session login: 24 jam sejak dibuat.
const DefaultTTL = 24 * time.Hour

// Store memetakan bearer token opaque ke user id. Lookup tidak pernah
// mengembalikan error ke pemanggil: kegagalan internal diperlakukan sebagai
// "tidak terautentikasi" supaya request lain tidak ikut tumbang.
type Store interface {
	Store(ctx context.Context, token string, userID int64)
	GetUserID(ctx context.Context, token string) (int64, bool)
	Remove(ctx context.Context, token string)
	Count(ctx context.Context) int
}
