package entities

import (
	"strconv"
	"time"

	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// Timestamp is seconds since the epoch. It is written in plain decimal
// notation, never in exponent form.
type Timestamp float64

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(float64(t.UnixNano()) / float64(time.Second))
}

func (t Timestamp) MarshalEasyJSON(w *jwriter.Writer) {
	w.Buffer.AppendBytes(strconv.AppendFloat(nil, float64(t), 'f', -1, 64))
}

func (t *Timestamp) UnmarshalEasyJSON(in *jlexer.Lexer) {
	*t = Timestamp(in.Float64())
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(t), 'f', -1, 64), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	in := jlexer.Lexer{Data: data}
	t.UnmarshalEasyJSON(&in)
	return in.Error()
}
