package brc

import "fmt"

// parseTemp decodes a temperature of the shape -?d?d.d into signed
// deci-degrees: "12.3" is 123, "-4.5" is -45. Only the four shapes the
// measurement grammar allows are accepted; anything else is a
// malformed temperature. No floating point is involved.
func parseTemp(b []byte) (int32, error) {
	switch len(b) {
	case 3: // t.d
		if b[1] == '.' {
			t, d := uint32(b[0]-'0'), uint32(b[2]-'0')
			if t <= 9 && d <= 9 {
				return int32(10*t + d), nil
			}
		}
	case 4:
		if b[0] == '-' { // -t.d
			if b[2] == '.' {
				t, d := uint32(b[1]-'0'), uint32(b[3]-'0')
				if t <= 9 && d <= 9 {
					return -int32(10*t + d), nil
				}
			}
		} else if b[2] == '.' { // ht.d
			h, t, d := uint32(b[0]-'0'), uint32(b[1]-'0'), uint32(b[3]-'0')
			if h <= 9 && t <= 9 && d <= 9 {
				return int32(100*h + 10*t + d), nil
			}
		}
	case 5: // -ht.d
		if b[0] == '-' && b[3] == '.' {
			h, t, d := uint32(b[1]-'0'), uint32(b[2]-'0'), uint32(b[4]-'0')
			if h <= 9 && t <= 9 && d <= 9 {
				return -int32(100*h + 10*t + d), nil
			}
		}
	}
	return 0, fmt.Errorf("temperature %q: %w", b, ErrMalformedTemperature)
}
