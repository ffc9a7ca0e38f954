package validators

import "go.mongodb.org/mongo-driver/bson"

var PropertyValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"title",
			"location",
			"price",
			"owner",
			"createdAt",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"title": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 200,
			},

			"location": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 200,
			},

			"price": bson.M{
				"bsonType": "long",
				"minimum":  1,
			},

			"area": bson.M{
				"bsonType": "int",
				"minimum":  0,
			},

			"bedrooms": bson.M{
				"bsonType": "int",
				"minimum":  0,
				"maximum":  50,
			},

			"bathrooms": bson.M{
				"bsonType": "int",
				"minimum":  0,
				"maximum":  50,
			},

			"type": bson.M{
				"bsonType":  "string",
				"maxLength": 50,
			},

			"image": bson.M{
				"bsonType":  "string",
				"maxLength": 500,
			},

			"description": bson.M{
				"bsonType":  "string",
				"maxLength": 5000,
			},

			"owner": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"createdAt": bson.M{
				"bsonType": "date",
			},
		},
	},
}
