// Copyright 2018 The okdraw Authors. All rights reserved.

package okdraw

import (
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseStopAttr reads one attribute of a stop element into stop: offset,
// stop-color, stop-opacity, or a style attribute carrying the latter two.
// The offset is stored as a whole percent.
func ParseStopAttr(stop *StopConfig, attr xml.Attr) (err error) {
	if stop == nil {
		return nil
	}

	switch attr.Name.Local {
	case "offset":
		var f float64
		f, err = readFraction(attr.Value)
		stop.Offset = strconv.Itoa(int(math.Round(f*100))) + "%"
	case "stop-color":
		v := strings.TrimSpace(attr.Value)
		if _, ok := parseColor(v); !ok {
			return fmt.Errorf("stop-color %q: %w", v, ErrParamMismatch)
		}
		stop.Color = v
	case "stop-opacity":
		stop.Opacity, err = strconv.ParseFloat(strings.TrimSpace(attr.Value), 64)
		stop.HasOpacity = err == nil
	case "style":
		for _, decl := range strings.Split(attr.Value, ";") {
			kv := strings.SplitN(decl, ":", 2)
			if len(kv) != 2 {
				continue
			}
			k := strings.TrimSpace(kv[0])
			if k != "stop-color" && k != "stop-opacity" {
				continue
			}
			if err = ParseStopAttr(stop, xml.Attr{Name: xml.Name{Local: k}, Value: kv[1]}); err != nil {
				return err
			}
		}
	}
	return err
}
