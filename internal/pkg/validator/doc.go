// Package validator validates request and event payload structs.
//
// Business code depends on the Validator interface; V10Validator implements it
// with go-playground/validator v10, English messages and snake_case field names.
package validator
