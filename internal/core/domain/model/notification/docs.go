// Package notification renders the WhatsApp messages sent about an order and
// models their outbox record. Messages are stored with the order change and
// delivered later, at most once.
package notification
