package main

import (
	"encoding/binary"
	"encoding/json"
	"strconv"
	"strings"
)

// ---------- Require ----------

func require(cond bool, msg string, chain SDKInterface) {
	if !cond {
		chain.Abort(msg)
	}
}

// ---------- JSON Conversions ----------

func ToJSON[T any](v T, objectType string, chain SDKInterface) string {
	b, err := json.Marshal(v)
	if err != nil {
		chain.Abort("failed to marshal " + objectType)
	}
	return string(b)
}

// ---------- UInt/String Helpers ----------

func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

// ---------- Time Helpers ----------

// unixToISO8601 converts a UNIX timestamp (seconds since epoch) into
// a fixed-format "YYYY-MM-DDThh:mm:ss" string in UTC.
func unixToISO8601(ts uint64) string {
	// Split into days and remaining seconds
	days := int64(ts / 86400)
	sec := int64(ts % 86400)
	hour := sec / 3600
	sec %= 3600
	minute := sec / 60
	second := sec % 60

	// Howard Hinnant's civil_from_days algorithm
	z := days + 719468
	var era int64
	if z >= 0 {
		era = z / 146097
	} else {
		era = (z - 146096) / 146097
	}
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100 + yoe/400)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3 - 12*((mp+3)/13)
	y += (mp + 3) / 13

	year := int(y)
	month := int(m)
	day := int(d)

	var buf [19]byte
	buf[0] = '0' + byte((year/1000)%10)
	buf[1] = '0' + byte((year/100)%10)
	buf[2] = '0' + byte((year/10)%10)
	buf[3] = '0' + byte(year%10)
	buf[4] = '-'
	buf[5] = '0' + byte((month/10)%10)
	buf[6] = '0' + byte(month%10)
	buf[7] = '-'
	buf[8] = '0' + byte((day/10)%10)
	buf[9] = '0' + byte(day%10)
	buf[10] = 'T'
	buf[11] = '0' + byte((hour/10)%10)
	buf[12] = '0' + byte(hour%10)
	buf[13] = ':'
	buf[14] = '0' + byte((minute/10)%10)
	buf[15] = '0' + byte(minute%10)
	buf[16] = ':'
	buf[17] = '0' + byte((second/10)%10)
	buf[18] = '0' + byte(second%10)

	return string(buf[:])
}

// parseISO8601ToUnix parses "YYYY-MM-DDThh:mm:ss" UTC format into UNIX
// seconds. The block timestamp always arrives in this fixed format.
func parseISO8601ToUnix(s string, chain SDKInterface) uint64 {
	require(len(s) >= 19, "invalid timestamp", chain)
	year := strToUint16Fast(s[0:4])
	month := strToUint8Fast(s[5:7])
	day := strToUint8Fast(s[8:10])
	hour := strToUint8Fast(s[11:13])
	minute := strToUint8Fast(s[14:16])
	second := strToUint8Fast(s[17:19])

	days := daysSinceUnixEpoch(year, month, day)
	return days*86400 + uint64(hour)*3600 + uint64(minute)*60 + uint64(second)
}

func strToUint16Fast(s string) uint16 {
	var n uint16
	for i := 0; i < len(s); i++ {
		n = n*10 + uint16(s[i]-'0')
	}
	return n
}

func strToUint8Fast(s string) uint8 {
	var n uint8
	for i := 0; i < len(s); i++ {
		n = n*10 + uint8(s[i]-'0')
	}
	return n
}

func isLeapYear(year uint16) bool {
	y := int(year)
	return (y%4 == 0 && y%100 != 0) || (y%400 == 0)
}

func daysSinceUnixEpoch(year uint16, month uint8, day uint8) uint64 {
	y := int(year) - 1970
	days := uint64(y * 365)
	// leap days of years strictly before `year`; the month loop below
	// accounts for the current year's Feb 29
	days += uint64((y+1)/4 - (y+69)/100 + (y+369)/400)

	var monthDays = [12]uint8{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for i := uint8(1); i < month; i++ {
		days += uint64(monthDays[i-1])
		if i == 2 && isLeapYear(year) {
			days++
		}
	}

	return days + uint64(day-1)
}

// blockNow reads the current block time as UNIX seconds.
func blockNow(chain SDKInterface) uint64 {
	return parseISO8601ToUnix(chain.GetEnv().Timestamp, chain)
}

// ---------- Parsing Helpers ----------

func nextField(s *string) string {
	i := strings.IndexByte(*s, '|')
	if i < 0 {
		f := *s
		*s = ""
		return f
	}
	f := (*s)[:i]
	*s = (*s)[i+1:]
	return f
}

func parseU64Fast(s string, chain SDKInterface) uint64 {
	require(len(s) > 0, "empty number", chain)
	const maxDiv10 = ^uint64(0) / 10
	var n uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		require(c >= '0' && c <= '9', "invalid character in number", chain)
		d := uint64(c - '0')
		require(n < maxDiv10 || (n == maxDiv10 && d <= ^uint64(0)%10), "number too large", chain)
		n = n*10 + d
	}
	return n
}

func appendU64(dst []byte, v uint64) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, buf[i:]...)
}

func appendU8(dst []byte, v uint8) []byte { return appendU64(dst, uint64(v)) }

// parseFixedPoint3 parses a decimal string with up to 3 fractional digits
// and returns an integer scaled by 1000 (e.g., "1.23" -> 1230).
// No allocations, no floats.
func parseFixedPoint3(s string, chain SDKInterface) uint64 {
	n := len(s)
	if n == 0 {
		return 0
	}

	var intPart uint64
	var fracPart uint64
	var fracDigits int
	dotSeen := false

	for i := 0; i < n; i++ {
		c := s[i]

		if c == '.' {
			require(!dotSeen, "invalid number: multiple dots", chain)
			dotSeen = true
			continue
		}

		require(c >= '0' && c <= '9', "invalid character in number", chain)
		d := uint64(c - '0')

		if !dotSeen {
			intPart = intPart*10 + d
		} else {
			require(fracDigits < 3, "too many fractional digits", chain)
			fracDigits++
			fracPart = fracPart*10 + d
		}
	}

	switch fracDigits {
	case 1:
		fracPart *= 100
	case 2:
		fracPart *= 10
	}

	return intPart*1000 + fracPart
}

// ---------- Binary codec ----------

// rd is a binary reader utility over a byte slice.
type rd struct {
	b     []byte
	i     int
	chain SDKInterface
}

func (r *rd) need(n int) {
	if r.i+n > len(r.b) {
		r.chain.Abort("decode overflow")
	}
}

func (r *rd) u8() byte {
	r.need(1)
	v := r.b[r.i]
	r.i++
	return v
}

func (r *rd) u16() uint16 {
	r.need(2)
	v := binary.BigEndian.Uint16(r.b[r.i : r.i+2])
	r.i += 2
	return v
}

// u64 reads a uint64 in big-endian format.
func (r *rd) u64() uint64 {
	r.need(8)
	v := binary.BigEndian.Uint64(r.b[r.i : r.i+8])
	r.i += 8
	return v
}

func (r *rd) str() string {
	l := int(r.u16())
	r.need(l)
	v := string(r.b[r.i : r.i+l])
	r.i += l
	return v
}

func appendString16(out []byte, s string, chain SDKInterface) []byte {
	if len(s) > 65535 {
		chain.Abort("string too long")
	}
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], uint16(len(s)))
	out = append(out, tmp[:]...)
	return append(out, s...)
}

func appendBinU64(out []byte, v uint64) []byte {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	return append(out, tmp[:]...)
}
