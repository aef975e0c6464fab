// Package filters translates optional property search criteria into MongoDB
// query predicates. Parsing of wire input and predicate construction are kept
// separate: handlers hand ParseCriteria the raw query values, and only
// normalized criteria ever reach the compiler.
package filters

import (
	"net/url"
	"strconv"

	"easyrent-backend/internal/errors"
	"easyrent-backend/internal/models"
)

// SearchCriteria is a sparse, already-normalized set of search constraints.
// A nil field imposes no constraint.
type SearchCriteria struct {
	PropertyType     *string
	City             *string
	District         *string
	Microdistrict    *string
	Bedrooms         *int
	Bathrooms        *int
	MinPrice         *float64
	MaxPrice         *float64
	MinArea          *float64
	MaxArea          *float64
	MinLandArea      *float64
	MaxLandArea      *float64
	Floor            *int
	BuildingClass    *string
	WallMaterial     *string
	SeparateBathroom *bool
	Parking          *bool
	PaymentPeriod    *string
	Query            *string
}

// ParseCriteria normalizes raw query parameters into SearchCriteria. Absent
// or empty parameters impose no constraint; present parameters must parse
// losslessly or the whole request is rejected with an INVALID_PARAMETER error.
func ParseCriteria(values url.Values) (*SearchCriteria, error) {
	c := &SearchCriteria{}

	if v := values.Get("propertyType"); v != "" {
		if !contains(models.PropertyTypes(), v) {
			return nil, errors.NewInvalidParameter("propertyType", v)
		}
		c.PropertyType = &v
	}
	if v := values.Get("city"); v != "" {
		c.City = &v
	}
	if v := values.Get("district"); v != "" {
		c.District = &v
	}
	if v := values.Get("microdistrict"); v != "" {
		c.Microdistrict = &v
	}

	var err error
	if c.Bedrooms, err = intParam(values, "bedrooms"); err != nil {
		return nil, err
	}
	if c.Bathrooms, err = intParam(values, "bathrooms"); err != nil {
		return nil, err
	}
	if c.Floor, err = intParam(values, "floor"); err != nil {
		return nil, err
	}

	if c.MinPrice, err = floatParam(values, "minPrice"); err != nil {
		return nil, err
	}
	if c.MaxPrice, err = floatParam(values, "maxPrice"); err != nil {
		return nil, err
	}
	if c.MinArea, err = floatParam(values, "minArea"); err != nil {
		return nil, err
	}
	if c.MaxArea, err = floatParam(values, "maxArea"); err != nil {
		return nil, err
	}
	if c.MinLandArea, err = floatParam(values, "minLandArea"); err != nil {
		return nil, err
	}
	if c.MaxLandArea, err = floatParam(values, "maxLandArea"); err != nil {
		return nil, err
	}

	if v := values.Get("buildingClass"); v != "" {
		if !contains(models.BuildingClasses(), v) {
			return nil, errors.NewInvalidParameter("buildingClass", v)
		}
		c.BuildingClass = &v
	}
	if v := values.Get("wallMaterial"); v != "" {
		if !contains(models.WallMaterials(), v) {
			return nil, errors.NewInvalidParameter("wallMaterial", v)
		}
		c.WallMaterial = &v
	}
	if v := values.Get("paymentPeriod"); v != "" {
		if !contains(models.PaymentPeriods(), v) {
			return nil, errors.NewInvalidParameter("paymentPeriod", v)
		}
		c.PaymentPeriod = &v
	}

	if c.SeparateBathroom, err = boolParam(values, "separateBathroom"); err != nil {
		return nil, err
	}
	if c.Parking, err = boolParam(values, "parking"); err != nil {
		return nil, err
	}

	if v := values.Get("query"); v != "" {
		c.Query = &v
	}

	return c, nil
}

func intParam(values url.Values, name string) (*int, error) {
	v := values.Get(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, errors.NewInvalidParameter(name, v)
	}
	return &n, nil
}

func floatParam(values url.Values, name string) (*float64, error) {
	v := values.Get(name)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, errors.NewInvalidParameter(name, v)
	}
	return &f, nil
}

// Booleans arrive on the wire as the explicit strings "true"/"false".
// Absence means "don't care", never false.
func boolParam(values url.Values, name string) (*bool, error) {
	v := values.Get(name)
	if v == "" {
		return nil, nil
	}
	switch v {
	case "true":
		b := true
		return &b, nil
	case "false":
		b := false
		return &b, nil
	default:
		return nil, errors.NewInvalidParameter(name, v)
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
