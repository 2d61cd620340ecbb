// Package docs holds the swagger document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/health": {
			"get": {
				"summary": "Liveness probe",
				"tags": [
					"system"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.Envelope"
						}
					}
				}
			}
		},
		"/api/orders": {
			"get": {
				"summary": "List the caller's orders, newest first",
				"tags": [
					"orders"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/http.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/queries.OrderPage"
										}
									}
								}
							]
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Page, from 1",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page size, at most 100",
						"name": "per_page",
						"in": "query"
					}
				]
			},
			"post": {
				"summary": "Place an order at a branch",
				"tags": [
					"orders"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/http.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/queries.OrderView"
										}
									}
								}
							]
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/http.Envelope"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Order",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.createOrderRequest"
						}
					}
				]
			}
		},
		"/api/orders/stats": {
			"get": {
				"summary": "Order counters of the caller",
				"tags": [
					"orders"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/http.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/queries.CustomerOrderStats"
										}
									}
								}
							]
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/orders/track": {
			"post": {
				"summary": "Track a courier shipment",
				"tags": [
					"branches"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/http.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/ports.Tracking"
										}
									}
								}
							]
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/http.Envelope"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Waybill",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.trackOrderRequest"
						}
					}
				]
			}
		},
		"/api/orders/{order}": {
			"get": {
				"summary": "Order detail for its customer",
				"tags": [
					"orders"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/http.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/queries.OrderView"
										}
									}
								}
							]
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/http.Envelope"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/http.Envelope"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Order id",
						"name": "order",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/orders/{order}/choose-delivery-payment": {
			"post": {
				"summary": "Choose how a ready order comes back and how it is paid",
				"tags": [
					"orders"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/http.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/queries.OrderView"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/http.Envelope"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Order id",
						"name": "order",
						"in": "path",
						"required": true
					},
					{
						"description": "Choice",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.chooseDeliveryPaymentRequest"
						}
					}
				]
			}
		},
		"/api/orders/{order}/update-status": {
			"post": {
				"summary": "Move an order of the caller's branch to another status",
				"tags": [
					"orders"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/http.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/queries.OrderView"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/http.Envelope"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/http.Envelope"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Order id",
						"name": "order",
						"in": "path",
						"required": true
					},
					{
						"description": "Status",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.updateOrderStatusRequest"
						}
					}
				]
			}
		},
		"/api/orders/{order}/update-actual-weight": {
			"post": {
				"summary": "Record the weighed items of an order of the caller's branch",
				"tags": [
					"orders"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/http.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/queries.OrderView"
										}
									}
								}
							]
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/http.Envelope"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Order id",
						"name": "order",
						"in": "path",
						"required": true
					},
					{
						"description": "Weighing",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.updateActualWeightRequest"
						}
					}
				]
			}
		},
		"/api/branches/stats": {
			"get": {
				"summary": "Dashboard of the caller's branch",
				"tags": [
					"branches"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/http.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/queries.BranchStats"
										}
									}
								}
							]
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/http.Envelope"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/branches/courier-rates": {
			"post": {
				"summary": "Quote gojek and grab rates between a branch and the customer",
				"tags": [
					"branches"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/http.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/queries.CourierRates"
										}
									}
								}
							]
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/http.Envelope"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Quote request",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.courierRatesRequest"
						}
					}
				]
			}
		},
		"/api/branches/available-couriers": {
			"get": {
				"summary": "Couriers that can be quoted",
				"tags": [
					"branches"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/http.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/http.availableCouriersView"
										}
									}
								}
							]
						}
					}
				}
			}
		},
		"/api/payments/pay/{order}": {
			"post": {
				"summary": "Open (or reuse) a hosted payment session for an order",
				"tags": [
					"payments"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/http.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/http.PaymentSessionView"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/http.Envelope"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/http.Envelope"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Order id",
						"name": "order",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/payments/status/{order}": {
			"get": {
				"summary": "Local and provider payment state of an order",
				"tags": [
					"payments"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/http.Envelope"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/queries.PaymentStatusView"
										}
									}
								}
							]
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"description": "Order id",
						"name": "order",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/payments/notification": {
			"post": {
				"summary": "Payment gateway webhook",
				"tags": [
					"payments"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/http.Envelope"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/http.Envelope"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Notification",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/http.paymentNotificationRequest"
						}
					}
				]
			}
		}
	},
	"definitions": {
		"http.Envelope": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				},
				"data": {},
				"error": {},
				"errors": {
					"type": "object",
					"additionalProperties": {
						"type": "array",
						"items": {
							"type": "string"
						}
					}
				}
			}
		},
		"http.lineItemRequest": {
			"type": "object",
			"properties": {
				"item_id": {
					"type": "string"
				},
				"item_name": {
					"type": "string"
				},
				"quantity": {
					"type": "number"
				},
				"unit": {
					"type": "string",
					"enum": [
						"kg",
						"pcs"
					]
				},
				"price_per_unit": {
					"type": "integer"
				},
				"subtotal": {
					"type": "integer"
				}
			},
			"required": [
				"item_id",
				"item_name",
				"unit"
			]
		},
		"http.createOrderRequest": {
			"type": "object",
			"properties": {
				"branch_id": {
					"type": "string"
				},
				"estimated_weight": {
					"type": "integer"
				},
				"customer_name": {
					"type": "string"
				},
				"customer_phone": {
					"type": "string"
				},
				"customer_address": {
					"type": "string"
				},
				"customer_latitude": {
					"type": "number"
				},
				"customer_longitude": {
					"type": "number"
				},
				"pickup_scheduled_time": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				},
				"special_instructions": {
					"type": "string"
				},
				"items_detail": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/http.lineItemRequest"
					}
				},
				"pickup_method": {
					"type": "string",
					"enum": [
						"free_pickup",
						"gojek",
						"grab"
					]
				},
				"company": {
					"type": "string"
				},
				"courier_name": {
					"type": "string"
				},
				"courier_code": {
					"type": "string"
				},
				"courier_service_name": {
					"type": "string"
				},
				"courier_service_code": {
					"type": "string"
				},
				"currency": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"duration": {
					"type": "string"
				},
				"shipment_duration_range": {
					"type": "string"
				},
				"shipment_duration_unit": {
					"type": "string"
				},
				"service_type": {
					"type": "string"
				},
				"shipping_type": {
					"type": "string"
				},
				"price": {
					"type": "integer"
				},
				"shipping_fee": {
					"type": "integer"
				},
				"shipping_fee_discount": {
					"type": "integer"
				},
				"shipping_fee_surcharge": {
					"type": "integer"
				}
			},
			"required": [
				"branch_id",
				"customer_phone",
				"customer_address",
				"customer_latitude",
				"customer_longitude",
				"pickup_method"
			]
		},
		"http.chooseDeliveryPaymentRequest": {
			"type": "object",
			"properties": {
				"delivery_method": {
					"type": "string",
					"enum": [
						"self_pickup",
						"free_delivery",
						"gojek",
						"grab"
					]
				},
				"payment_method": {
					"type": "string",
					"enum": [
						"cash",
						"online"
					]
				},
				"company": {
					"type": "string"
				},
				"courier_name": {
					"type": "string"
				},
				"courier_code": {
					"type": "string"
				},
				"courier_service_name": {
					"type": "string"
				},
				"courier_service_code": {
					"type": "string"
				},
				"currency": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"duration": {
					"type": "string"
				},
				"shipment_duration_range": {
					"type": "string"
				},
				"shipment_duration_unit": {
					"type": "string"
				},
				"service_type": {
					"type": "string"
				},
				"shipping_type": {
					"type": "string"
				},
				"price": {
					"type": "integer"
				},
				"shipping_fee": {
					"type": "integer"
				},
				"shipping_fee_discount": {
					"type": "integer"
				},
				"shipping_fee_surcharge": {
					"type": "integer"
				}
			},
			"required": [
				"delivery_method",
				"payment_method"
			]
		},
		"http.updateOrderStatusRequest": {
			"type": "object",
			"properties": {
				"order_status": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				}
			},
			"required": [
				"order_status"
			]
		},
		"http.updateActualWeightRequest": {
			"type": "object",
			"properties": {
				"actual_weight_items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/http.lineItemRequest"
					}
				},
				"actual_weight": {
					"type": "number"
				},
				"proof_video_url": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				}
			},
			"required": [
				"actual_weight_items"
			]
		},
		"http.courierRatesRequest": {
			"type": "object",
			"properties": {
				"branch_id": {
					"type": "string"
				},
				"destination_latitude": {
					"type": "number"
				},
				"destination_longitude": {
					"type": "number"
				},
				"type": {
					"type": "string",
					"enum": [
						"pickup",
						"delivery"
					]
				},
				"weight": {
					"type": "integer"
				},
				"value": {
					"type": "integer"
				}
			},
			"required": [
				"branch_id",
				"destination_latitude",
				"destination_longitude",
				"type"
			]
		},
		"http.trackOrderRequest": {
			"type": "object",
			"properties": {
				"waybill_id": {
					"type": "string"
				},
				"courier_waybill_id": {
					"type": "string"
				},
				"courier": {
					"type": "string",
					"enum": [
						"gojek",
						"grab"
					]
				}
			}
		},
		"http.paymentNotificationRequest": {
			"type": "object",
			"properties": {
				"order_id": {
					"type": "string"
				},
				"status_code": {
					"type": "string"
				},
				"gross_amount": {
					"type": "string"
				},
				"signature_key": {
					"type": "string"
				},
				"transaction_status": {
					"type": "string"
				},
				"fraud_status": {
					"type": "string"
				},
				"payment_type": {
					"type": "string"
				}
			}
		},
		"http.PaymentSessionView": {
			"type": "object",
			"properties": {
				"snaptoken": {
					"type": "string"
				},
				"redirect_url": {
					"type": "string"
				},
				"expires_at": {
					"type": "string",
					"format": "date-time"
				},
				"order_number": {
					"type": "string"
				},
				"total_amount": {
					"type": "integer"
				},
				"reused": {
					"type": "boolean"
				}
			}
		},
		"http.availableCouriersView": {
			"type": "object",
			"properties": {
				"couriers": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/queries.CourierOption"
					}
				}
			}
		},
		"queries.CourierOption": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"name": {
					"type": "string"
				}
			}
		},
		"queries.CourierView": {
			"type": "object",
			"properties": {
				"courier_company": {
					"type": "string"
				},
				"courier_name": {
					"type": "string"
				},
				"courier_code": {
					"type": "string"
				},
				"courier_service_name": {
					"type": "string"
				},
				"courier_service_code": {
					"type": "string"
				},
				"currency": {
					"type": "string"
				},
				"courier_description": {
					"type": "string"
				},
				"duration": {
					"type": "string"
				},
				"shipment_duration_range": {
					"type": "string"
				},
				"shipment_duration_unit": {
					"type": "string"
				},
				"shipping_type": {
					"type": "string"
				},
				"biteship_order_id": {
					"type": "string"
				},
				"biteship_waybill_id": {
					"type": "string"
				},
				"courier_tracking_link": {
					"type": "string"
				},
				"courier_rate": {
					"type": "integer"
				},
				"shipping_fee": {
					"type": "integer"
				},
				"shipping_fee_discount": {
					"type": "integer"
				},
				"shipping_fee_surcharge": {
					"type": "integer"
				}
			}
		},
		"queries.OrderView": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"order_number": {
					"type": "string"
				},
				"customer_id": {
					"type": "string"
				},
				"branch_id": {
					"type": "string"
				},
				"order_status": {
					"type": "string"
				},
				"payment_status": {
					"type": "string"
				},
				"payment_method": {
					"type": "string"
				},
				"paid_at": {
					"type": "string",
					"format": "date-time"
				},
				"snaptoken": {
					"type": "string"
				},
				"payment_url": {
					"type": "string"
				},
				"payment_expires_at": {
					"type": "string",
					"format": "date-time"
				},
				"pricing_path": {
					"type": "string"
				},
				"items_detail": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/http.lineItemRequest"
					}
				},
				"estimated_weight": {
					"type": "integer"
				},
				"price_per_kg": {
					"type": "integer"
				},
				"subtotal": {
					"type": "integer"
				},
				"pickup_shipping_fee": {
					"type": "integer"
				},
				"delivery_fee": {
					"type": "integer"
				},
				"discount_amount": {
					"type": "integer"
				},
				"discount_code": {
					"type": "string"
				},
				"total_amount": {
					"type": "integer"
				},
				"actual_weight": {
					"type": "number"
				},
				"actual_weight_items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/http.lineItemRequest"
					}
				},
				"actual_total_amount": {
					"type": "integer"
				},
				"proof_video_url": {
					"type": "string"
				},
				"actual_weight_recorded_at": {
					"type": "string",
					"format": "date-time"
				},
				"customer_name": {
					"type": "string"
				},
				"customer_phone": {
					"type": "string"
				},
				"customer_address": {
					"type": "string"
				},
				"customer_latitude": {
					"type": "number"
				},
				"customer_longitude": {
					"type": "number"
				},
				"pickup_method": {
					"type": "string"
				},
				"pickup_scheduled_time": {
					"type": "string"
				},
				"pickup": {
					"$ref": "#/definitions/queries.CourierView"
				},
				"delivery_method": {
					"type": "string"
				},
				"delivery": {
					"$ref": "#/definitions/queries.CourierView"
				},
				"pickup_staff_id": {
					"type": "string"
				},
				"delivery_staff_id": {
					"type": "string"
				},
				"notes": {
					"type": "string"
				},
				"special_instructions": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"queries.PageMeta": {
			"type": "object",
			"properties": {
				"current_page": {
					"type": "integer"
				},
				"per_page": {
					"type": "integer"
				},
				"total": {
					"type": "integer"
				},
				"last_page": {
					"type": "integer"
				}
			}
		},
		"queries.OrderPage": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/queries.OrderView"
					}
				},
				"meta": {
					"$ref": "#/definitions/queries.PageMeta"
				}
			}
		},
		"queries.CustomerOrderStats": {
			"type": "object",
			"properties": {
				"total_orders": {
					"type": "integer"
				},
				"completed_orders": {
					"type": "integer"
				},
				"active_orders": {
					"type": "integer"
				}
			}
		},
		"queries.Revenue": {
			"type": "object",
			"properties": {
				"today": {
					"type": "integer"
				},
				"week": {
					"type": "integer"
				},
				"month": {
					"type": "integer"
				}
			}
		},
		"queries.BranchStats": {
			"type": "object",
			"properties": {
				"branch_id": {
					"type": "string"
				},
				"total_orders": {
					"type": "integer"
				},
				"orders_by_status": {
					"type": "object",
					"additionalProperties": {
						"type": "integer"
					}
				},
				"revenue": {
					"$ref": "#/definitions/queries.Revenue"
				},
				"recent_orders": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/queries.OrderView"
					}
				}
			}
		},
		"queries.Point": {
			"type": "object",
			"properties": {
				"latitude": {
					"type": "number"
				},
				"longitude": {
					"type": "number"
				}
			}
		},
		"queries.BranchView": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"detail_address": {
					"type": "string"
				},
				"latitude": {
					"type": "number"
				},
				"longitude": {
					"type": "number"
				}
			}
		},
		"order.CourierQuote": {
			"type": "object",
			"properties": {
				"company": {
					"type": "string"
				},
				"courier_name": {
					"type": "string"
				},
				"courier_code": {
					"type": "string"
				},
				"courier_service_name": {
					"type": "string"
				},
				"courier_service_code": {
					"type": "string"
				},
				"currency": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"duration": {
					"type": "string"
				},
				"shipment_duration_range": {
					"type": "string"
				},
				"shipment_duration_unit": {
					"type": "string"
				},
				"service_type": {
					"type": "string"
				},
				"shipping_type": {
					"type": "string"
				},
				"price": {
					"type": "integer"
				},
				"shipping_fee": {
					"type": "integer"
				},
				"shipping_fee_discount": {
					"type": "integer"
				},
				"shipping_fee_surcharge": {
					"type": "integer"
				},
				"tracking": {
					"$ref": "#/definitions/order.CourierTracking"
				}
			}
		},
		"queries.CourierRates": {
			"type": "object",
			"properties": {
				"branch": {
					"$ref": "#/definitions/queries.BranchView"
				},
				"type": {
					"type": "string",
					"enum": [
						"pickup",
						"delivery"
					]
				},
				"type_description": {
					"type": "string"
				},
				"origin": {
					"$ref": "#/definitions/queries.Point"
				},
				"destination": {
					"$ref": "#/definitions/queries.Point"
				},
				"rates": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/order.CourierQuote"
					}
				}
			}
		},
		"ports.PaymentState": {
			"type": "object",
			"properties": {
				"order_id": {
					"type": "string"
				},
				"transaction_id": {
					"type": "string"
				},
				"transaction_status": {
					"type": "string"
				},
				"fraud_status": {
					"type": "string"
				},
				"payment_type": {
					"type": "string"
				},
				"gross_amount": {
					"type": "string"
				},
				"status_code": {
					"type": "string"
				},
				"transaction_time": {
					"type": "string"
				}
			}
		},
		"queries.LocalPaymentState": {
			"type": "object",
			"properties": {
				"order_number": {
					"type": "string"
				},
				"payment_status": {
					"type": "string"
				},
				"total_amount": {
					"type": "integer"
				}
			}
		},
		"queries.PaymentStatusView": {
			"type": "object",
			"properties": {
				"order": {
					"$ref": "#/definitions/queries.LocalPaymentState"
				},
				"midtrans": {
					"$ref": "#/definitions/ports.PaymentState"
				}
			}
		},
		"ports.TrackingEvent": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"note": {
					"type": "string"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"ports.TrackingCourier": {
			"type": "object",
			"properties": {
				"company": {
					"type": "string"
				},
				"driver_name": {
					"type": "string"
				},
				"driver_phone": {
					"type": "string"
				}
			}
		},
		"ports.Tracking": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"waybill_id": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"link": {
					"type": "string"
				},
				"courier": {
					"$ref": "#/definitions/ports.TrackingCourier"
				},
				"history": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/ports.TrackingEvent"
					}
				}
			}
		},
		"order.CourierTracking": {
			"type": "object",
			"properties": {
				"provider_order_id": {
					"type": "string"
				},
				"waybill_id": {
					"type": "string"
				},
				"link": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Laundry Marketplace API",
	Description:      "Order lifecycle of a laundry marketplace: placement, weighing, courier legs, payment and notifications.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
