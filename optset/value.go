package optset

import (
	"errors"
	"flag"
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"
)

type boolValue bool

func (b *boolValue) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return numError(err)
	}
	*b = boolValue(v)
	return nil
}

func (b *boolValue) Get() any { return bool(*b) }
func (b *boolValue) String() string { return strconv.FormatBool(bool(*b)) }
func (b *boolValue) IsBoolFlag() bool { return true }

// countValue counts how often a no-argument option is given.
type countValue int

func (c *countValue) Set(string) error { *c++; return nil }
func (c *countValue) Get() any { return int(*c) }
func (c *countValue) String() string { return strconv.Itoa(int(*c)) }
func (c *countValue) IsBoolFlag() bool { return true }

type stringValue string

func (v *stringValue) Set(s string) error { *v = stringValue(s); return nil }
func (v *stringValue) Get() any { return string(*v) }
func (v *stringValue) String() string { return string(*v) }

type intValue int

func (v *intValue) Set(s string) error {
	n, err := strconv.ParseInt(s, 0, strconv.IntSize)
	if err != nil {
		return numError(err)
	}
	*v = intValue(n)
	return nil
}

func (v *intValue) Get() any { return int(*v) }
func (v *intValue) String() string { return strconv.Itoa(int(*v)) }

// numError strips the function name and input from strconv errors, the argument is already
// quoted by Parse.
func numError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}

type listValue []string

// List returns a [flag.Value] that collects every argument of a repeated option, as in
// -I dir1 -I dir2. Get returns a []string, nil until the option is given.
func List() flag.Value {
	return new(listValue)
}

func (v *listValue) Set(s string) error { *v = append(*v, s); return nil }
func (v *listValue) Get() any { return []string(*v) }
func (v *listValue) String() string { return strings.Join(*v, ",") }

type choiceValue struct {
	val     string
	allowed []string
}

// Choice returns a [flag.Value] that only accepts one of the allowed arguments. Get returns a
// string, empty until the option is given.
func Choice(allowed ...string) flag.Value {
	return &choiceValue{allowed: allowed}
}

func (v *choiceValue) Set(s string) error {
	if !slices.Contains(v.allowed, s) {
		return fmt.Errorf("must be one of: %s", strings.Join(v.allowed, ", "))
	}
	v.val = s
	return nil
}

func (v *choiceValue) Get() any { return v.val }
func (v *choiceValue) String() string { return v.val }

type keyValue map[string]string

// KeyValue returns a [flag.Value] for a repeated key=value option, as in -D os=linux -D arch=arm.
// The argument is split on the first '='. Get returns a map[string]string.
func KeyValue() flag.Value {
	return make(keyValue)
}

func (v keyValue) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	switch {
	case !ok:
		return errors.New("expected key=value")
	case key == "":
		return errors.New("empty key")
	}
	v[key] = value
	return nil
}

func (v keyValue) Get() any { return map[string]string(v) }

func (v keyValue) String() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		keys[i] = k + "=" + v[k]
	}
	return strings.Join(keys, ",")
}

type regexpValue struct {
	re *regexp.Regexp
}

// Regexp returns a [flag.Value] that compiles its argument as a regular expression. Get returns a
// *regexp.Regexp, nil until the option is given.
func Regexp() flag.Value {
	return &regexpValue{}
}

func (v *regexpValue) Set(s string) error {
	re, err := regexp.Compile(s)
	if err != nil {
		return err
	}
	v.re = re
	return nil
}

func (v *regexpValue) Get() any { return v.re }

func (v *regexpValue) String() string {
	if v.re == nil {
		return ""
	}
	return v.re.String()
}
