package errors

import (
	"fmt"

	"github.com/atack/script/types"
)

type ExpectedKindGotKind struct {
	Expected types.TokenKind
	Got      types.Token
}

func (e ExpectedKindGotKind) Error() string {
	return fmt.Sprintf("got a %s %q, expected a %s. %s", e.Got.Kind, e.Got.Value, e.Expected, e.Got.Pos)
}

// UnexpectedToken is returned when no expression can start at Got.
type UnexpectedToken struct {
	Got types.Token
}

func (e UnexpectedToken) Error() string {
	if e.Got.Kind == types.EOF {
		return fmt.Sprintf("unexpected end of input. %s", e.Got.Pos)
	}
	return fmt.Sprintf("unexpected %s %q. %s", e.Got.Kind, e.Got.Value, e.Got.Pos)
}

type Unsupported struct {
	Construct string
	Got       types.Token
}

func (e Unsupported) Error() string {
	return fmt.Sprintf("%s is not supported. %s", e.Construct, e.Got.Pos)
}

type TooDeep struct {
	Limit int
	Got   types.Token
}

func (e TooDeep) Error() string {
	return fmt.Sprintf("nesting deeper than %d at %s %q. %s", e.Limit, e.Got.Kind, e.Got.Value, e.Got.Pos)
}

type InvalidNumber struct {
	Got types.Token
	Err error
}

func (e InvalidNumber) Error() string {
	return fmt.Sprintf("invalid number %q: %s. %s", e.Got.Value, e.Err, e.Got.Pos)
}

func (e InvalidNumber) Unwrap() error {
	return e.Err
}
