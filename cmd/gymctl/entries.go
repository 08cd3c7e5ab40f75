package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/2beens/gymlog/pkg/gymclient"
)

// parseSet reads "<exercise-id>:<sets>x<reps>@<weight>", e.g. "3:4x8@62.5".
// The weight part is optional and defaults to 0.
func parseSet(spec string) (gymclient.StrengthInput, error) {
	var in gymclient.StrengthInput

	idPart, rest, ok := strings.Cut(spec, ":")
	if !ok {
		return in, fmt.Errorf("set %q: expected <exercise-id>:<sets>x<reps>[@<weight>]", spec)
	}
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return in, fmt.Errorf("set %q: bad exercise id", spec)
	}
	in.ExerciseID = &id

	work, weight, hasWeight := strings.Cut(rest, "@")
	setsPart, repsPart, ok := strings.Cut(strings.ToLower(work), "x")
	if !ok {
		return in, fmt.Errorf("set %q: expected <sets>x<reps>", spec)
	}
	if in.Sets, err = strconv.Atoi(setsPart); err != nil {
		return in, fmt.Errorf("set %q: bad sets", spec)
	}
	if in.Reps, err = strconv.Atoi(repsPart); err != nil {
		return in, fmt.Errorf("set %q: bad reps", spec)
	}

	if hasWeight {
		if in.Weight, err = decimal.NewFromString(weight); err != nil {
			return in, fmt.Errorf("set %q: bad weight", spec)
		}
	}

	return in, nil
}

// parseCardio reads "<cardio-type-id>:<minutes>[@<distance>]", e.g. "2:30@5.2".
func parseCardio(spec string) (gymclient.CardioInput, error) {
	var in gymclient.CardioInput

	idPart, rest, ok := strings.Cut(spec, ":")
	if !ok {
		return in, fmt.Errorf("cardio %q: expected <cardio-type-id>:<minutes>[@<distance>]", spec)
	}
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return in, fmt.Errorf("cardio %q: bad cardio type id", spec)
	}
	in.CardioTypeID = &id

	minutes, distance, hasDistance := strings.Cut(rest, "@")
	if in.Minutes, err = strconv.Atoi(minutes); err != nil {
		return in, fmt.Errorf("cardio %q: bad minutes", spec)
	}

	if hasDistance {
		d, err := decimal.NewFromString(distance)
		if err != nil {
			return in, fmt.Errorf("cardio %q: bad distance", spec)
		}
		in.Distance = decimal.NewNullDecimal(d)
	}

	return in, nil
}
