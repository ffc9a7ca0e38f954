package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"property",
			"user",
			"paymentMethod",
			"totalAmount",
			"transactionId",
			"status",
			"createdAt",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"property": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"user": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"paymentMethod": bson.M{
				"bsonType": "string",
				"enum": []string{
					"card",
					"cash",
				},
			},

			"totalAmount": bson.M{
				"bsonType": "long",
				"minimum":  1,
			},

			"transactionId": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 100,
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"pending",
					"confirmed",
					"cancelled",
				},
			},

			"createdAt": bson.M{
				"bsonType": "date",
			},
		},
	},
}
