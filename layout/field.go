package layout

// Field names one semantic field of a Mii record. The set is closed; a
// descriptor lists the subset present in its variant.
type Field uint8

const (
	FieldInvalid Field = iota + 1
	FieldGender
	FieldBirthMonth
	FieldBirthDay
	FieldFavoriteColor
	FieldFavorite
	FieldName
	FieldHeight
	FieldWeight
	FieldMiiID
	FieldSystemID
	FieldFaceShape
	FieldSkinTone
	FieldFacialFeature
	FieldNoSharing
	FieldDownloaded
	FieldHairStyle
	FieldHairColor
	FieldHairPart
	FieldEyebrowType
	FieldEyebrowColor
	FieldEyeType
	FieldEyeColor
	FieldNoseType
	FieldMouthType
	FieldMouthColor
	FieldGlassesType
	FieldGlassesColor
	FieldMustacheType
	FieldBeardType
	FieldFacialHairColor
	FieldMole
	FieldCreatorName
)

// fieldCount is the number of Field values.
const fieldCount = int(FieldCreatorName - FieldInvalid + 1)

var fieldNames = map[Field]string{
	FieldInvalid:         "invalid",
	FieldGender:          "gender",
	FieldBirthMonth:      "birth_month",
	FieldBirthDay:        "birth_day",
	FieldFavoriteColor:   "favorite_color",
	FieldFavorite:        "favorite",
	FieldName:            "name",
	FieldHeight:          "height",
	FieldWeight:          "weight",
	FieldMiiID:           "mii_id",
	FieldSystemID:        "system_id",
	FieldFaceShape:       "face_shape",
	FieldSkinTone:        "skin_tone",
	FieldFacialFeature:   "facial_feature",
	FieldNoSharing:       "no_sharing",
	FieldDownloaded:      "downloaded",
	FieldHairStyle:       "hair_style",
	FieldHairColor:       "hair_color",
	FieldHairPart:        "hair_part",
	FieldEyebrowType:     "eyebrow_type",
	FieldEyebrowColor:    "eyebrow_color",
	FieldEyeType:         "eye_type",
	FieldEyeColor:        "eye_color",
	FieldNoseType:        "nose_type",
	FieldMouthType:       "mouth_type",
	FieldMouthColor:      "mouth_color",
	FieldGlassesType:     "glasses_type",
	FieldGlassesColor:    "glasses_color",
	FieldMustacheType:    "mustache_type",
	FieldBeardType:       "beard_type",
	FieldFacialHairColor: "facial_hair_color",
	FieldMole:            "mole",
	FieldCreatorName:     "creator_name",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}

	return "unknown"
}

// Kind tells the record parser how to interpret a field's bits.
type Kind uint8

const (
	KindUint Kind = iota + 1 // KindUint is a plain unsigned integer.
	KindBool                 // KindBool is a single flag bit.
	KindText                 // KindText is a fixed-length run of UTF-16 code units.
	KindEnum                 // KindEnum indexes a closed table (gender, palette).
)
