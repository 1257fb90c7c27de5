package gamelog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tatianab/gaia-stats/internal/models"
)

type resourceCode struct {
	code     string
	resource models.Resource
}

// resourceCodes is scanned top to bottom. Multi-character codes come first
// so that a code is never shadowed by a shorter code it ends with.
var resourceCodes = []resourceCode{
	{"vp", models.ResourceVP},
	{"pw", models.ResourcePower},
	{"c", models.ResourceCoin},
	{"o", models.ResourceOre},
	{"k", models.ResourceKnowledge},
	{"q", models.ResourceQIC},
	{"t", models.ResourcePowerToken},
}

var digitRun = regexp.MustCompile(`\d+`)

// ParseToken decodes a compact delta such as "3vp" or "-2c".
func ParseToken(token string) (*models.StateChange, error) {
	if token == "" {
		return nil, &InvalidTokenError{Token: token, Reason: "empty"}
	}

	change := &models.StateChange{Direction: models.Gain}
	if strings.HasPrefix(token, "-") {
		change.Direction = models.Loss
	}

	resource, ok := resourceFor(token)
	if !ok {
		return nil, &UnrecognizedResourceError{Token: token}
	}
	change.Resource = resource

	digits := digitRun.FindString(token)
	if digits == "" {
		return nil, &MissingQuantityError{Token: token}
	}
	qty, err := strconv.Atoi(digits)
	if err != nil {
		return nil, &InvalidTokenError{Token: token, Reason: err.Error()}
	}
	change.Quantity = qty

	return change, nil
}

func resourceFor(token string) (models.Resource, bool) {
	for _, rc := range resourceCodes {
		if strings.HasSuffix(token, rc.code) {
			return rc.resource, true
		}
	}
	return models.ResourceUnknown, false
}

// CodeFor returns the token suffix used for a resource.
func CodeFor(r models.Resource) string {
	for _, rc := range resourceCodes {
		if rc.resource == r {
			return rc.code
		}
	}
	return ""
}

// FormatChange renders a change back into canonical token form.
func FormatChange(c models.StateChange) string {
	s := strconv.Itoa(c.Quantity) + CodeFor(c.Resource)
	if c.Direction == models.Loss {
		return "-" + s
	}
	return s
}
