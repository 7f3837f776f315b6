package model

import internalmodel "github.com/goliatone/go-cardform/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeText     = internalmodel.FieldTypeText
	FieldTypeDate     = internalmodel.FieldTypeDate
	FieldTypeFile     = internalmodel.FieldTypeFile
	FieldTypeTextarea = internalmodel.FieldTypeTextarea
)

// Side re-exports the internal card side enumeration.
type Side = internalmodel.Side

const (
	SideFront = internalmodel.SideFront
	SideBack  = internalmodel.SideBack
)

type SmartField = internalmodel.SmartField
type FormModel = internalmodel.FormModel
