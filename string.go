package ruledoc

import "encoding/json"

func timezoneEffect(_ []string, r *Reducer) change {
	return change{
		value:    Some(r.synth.Timezone("timezone")),
		fragment: "The value must be a valid time zone, such as `Africa/Accra`.",
	}
}

func emailEffect(_ []string, r *Reducer) change {
	return change{
		typ:      TypeString,
		value:    Some(r.synth.Email("email")),
		fragment: "The value must be a valid email address.",
	}
}

func urlEffect(_ []string, r *Reducer) change {
	return change{
		typ:      TypeString,
		value:    Some(r.synth.URL("url")),
		fragment: "The value must be a valid URL.",
	}
}

func ipEffect(_ []string, r *Reducer) change {
	return change{
		typ:      TypeString,
		value:    Some(r.synth.IPv4("ip")),
		fragment: "The value must be a valid IP address.",
	}
}

func jsonEffect(_ []string, r *Reducer) change {
	b, err := json.Marshal([]string{r.synth.Word("json"), r.synth.Word("json")})
	if err != nil {
		b = []byte("[]")
	}
	return change{
		typ:      TypeString,
		value:    Some(string(b)),
		fragment: "The value must be a valid JSON string.",
	}
}
