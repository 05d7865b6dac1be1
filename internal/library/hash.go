package library

import (
	"fmt"
	"hash/crc32"
)

// ComputeHash derives the stable catalog id for an audiobook from its title
// and author: a CRC-32 (IEEE) over the concatenated UTF-8 bytes, formatted as
// lowercase hex without fixed width.
//
// The two strings are concatenated without a separator, so ("ab", "c") and
// ("a", "bc") collide. Existing catalogs were built this way; keeping the
// exact input preserves every id already handed out to clients.
func ComputeHash(title, author string) string {
	crc := crc32.ChecksumIEEE([]byte(title + author))
	return fmt.Sprintf("%x", crc)
}
