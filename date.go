package ruledoc

import (
	"strings"
	"time"

	"github.com/dromara/carbon/v2"
)

// ISO8601Layout is the layout of date examples: 2006-01-02T15:04:05-0700.
const ISO8601Layout = "2006-01-02T15:04:05-0700"

func dateEffect(_ []string, r *Reducer) change {
	return change{
		typ:      TypeString,
		value:    Some(r.now().Format(ISO8601Layout)),
		fragment: "The value must be a valid date.",
	}
}

func dateFormatEffect(args []string, r *Reducer) change {
	var format string
	if len(args) > 0 {
		format = args[0]
	}
	return change{
		typ:      TypeString,
		value:    Some(FormatDate(r.now(), format)),
		fragment: "The value must be a valid date in the format " + format,
	}
}

// FormatDate formats t with a PHP-style date format ("Y-m-d H:i:s"). A format
// already written as a Go layout (containing "2006") is used as is.
func FormatDate(t time.Time, format string) string {
	if format == "" {
		return ""
	}
	if strings.Contains(format, "2006") {
		return t.Format(format)
	}
	return carbon.CreateFromStdTime(t).Format(format)
}
