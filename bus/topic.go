package bus

import "joyadapter-go/x/conv"

// joinTokens renders a topic as "a/b/3" for use as a map key. Int tokens are
// prefixed with a NUL byte so "3" and 3 stay distinct.
func joinTokens(t Topic) string {
	var out []byte
	var num [24]byte
	for i, tok := range t {
		if i > 0 {
			out = append(out, '/')
		}
		switch v := tok.(type) {
		case string:
			out = append(out, v...)
		case int:
			out = append(out, 0)
			out = append(out, conv.Itoa(num[:], int64(v))...)
		default:
			out = append(out, '?')
		}
	}
	return string(out)
}
