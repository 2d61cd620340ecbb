package notification

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// Branch is the part of a branch the templates need.
type Branch struct {
	Name  string
	Phone string
}

func statusText(s order.Status) string {
	switch s {
	case order.StatusPending:
		return "Pesanan Anda sedang menunggu konfirmasi."
	case order.StatusProcessing:
		return "Pesanan Anda sedang diproses oleh laundry."
	case order.StatusWashing:
		return "Cucian Anda sedang dicuci. 🧺"
	case order.StatusReady:
		return "Cucian Anda sudah selesai dan siap diambil! ✨"
	case order.StatusPickedUp:
		return "Cucian Anda sudah diambil oleh kurir."
	case order.StatusDelivering:
		return "Cucian Anda sedang dalam perjalanan ke alamat Anda. 🚗"
	case order.StatusCompleted:
		return "Pesanan selesai! Terima kasih telah menggunakan layanan kami. 😊"
	case order.StatusCancelled:
		return "Pesanan Anda dibatalkan."
	default:
		return "Status pesanan diperbarui."
	}
}

func pickupText(m order.PickupMethod) string {
	switch m {
	case order.PickupFree:
		return "🚗 Penjemputan Gratis"
	case order.PickupGojek:
		return "🏍️ GoSend"
	case order.PickupGrab:
		return "🏍️ GrabExpress"
	default:
		return "📍 Antar Sendiri"
	}
}

// RenderBranchNewOrder tells the branch a new order arrived. Sent to the branch phone.
func RenderBranchNewOrder(o *order.Order, b Branch) string {
	var sb strings.Builder
	c := o.Contact()

	sb.WriteString("*Pesanan Baru Masuk!* 🎉\n\n")
	fmt.Fprintf(&sb, "📦 Order: *%s*\n", o.Number())
	fmt.Fprintf(&sb, "👤 Customer: *%s*\n", c.Name())
	fmt.Fprintf(&sb, "📞 Telp: %s\n", c.Phone())
	fmt.Fprintf(&sb, "⚖️ Estimasi Berat: *%d kg*\n", o.Pricing().EstimatedWeight())
	fmt.Fprintf(&sb, "💰 Subtotal: *%s*\n", FormatRupiah(o.Subtotal()))
	fmt.Fprintf(&sb, "🚚 Pickup: %s\n", pickupText(o.PickupMethod()))
	if o.PickupScheduledTime() != "" {
		fmt.Fprintf(&sb, "⏰ Jadwal Pickup: %s\n", o.PickupScheduledTime())
	}
	fmt.Fprintf(&sb, "\n📍 *Alamat Pickup:*\n%s\n", c.Address())
	if o.SpecialInstructions() != "" {
		fmt.Fprintf(&sb, "\n📝 *Instruksi Khusus:*\n%s\n", o.SpecialInstructions())
	}
	if o.Notes() != "" {
		fmt.Fprintf(&sb, "\n💬 Catatan: %s\n", o.Notes())
	}
	sb.WriteString("\n_Segera proses pesanan ini melalui aplikasi admin._")

	return sb.String()
}

// RenderCustomerStatusUpdate tells the customer the order moved to a new status.
func RenderCustomerStatusUpdate(o *order.Order, b Branch) string {
	var sb strings.Builder

	sb.WriteString("*Update Status Pesanan*\n\n")
	fmt.Fprintf(&sb, "Halo *%s*,\n\n", o.Contact().Name())
	fmt.Fprintf(&sb, "📦 Order: *%s*\n", o.Number())
	fmt.Fprintf(&sb, "🏷️ Status: *%s*\n", statusText(o.Status()))
	fmt.Fprintf(&sb, "📍 Cabang: *%s*\n\n", b.Name)
	if o.Status() == order.StatusReady {
		sb.WriteString("Silakan pilih metode pengambilan cucian Anda melalui aplikasi.\n\n")
	}
	if o.Notes() != "" {
		fmt.Fprintf(&sb, "📝 Catatan: %s\n\n", o.Notes())
	}
	sb.WriteString("Terima kasih! 🙏")

	return sb.String()
}

// RenderCustomerActualWeight reports the weighing result against the estimate.
func RenderCustomerActualWeight(o *order.Order, b Branch) string {
	var sb strings.Builder

	sb.WriteString("*Update Berat Aktual* ⚖️\n\n")
	fmt.Fprintf(&sb, "Halo *%s*,\n\n", o.Contact().Name())
	fmt.Fprintf(&sb, "📦 Order: *%s*\n", o.Number())
	fmt.Fprintf(&sb, "📍 Cabang: *%s*\n\n", b.Name)
	sb.WriteString("Cucian Anda sudah ditimbang dengan hasil:\n\n")

	actual := o.Actual()
	if actual != nil && len(actual.Items) > 0 {
		sb.WriteString("*Items Aktual:*\n")
		for _, item := range actual.Items {
			fmt.Fprintf(&sb, "• %s: %s %s - %s\n",
				item.Name(), item.Quantity().String(), item.Unit(), FormatRupiah(item.Subtotal()))
		}
		sb.WriteString("\n")
	}

	if actual != nil && actual.TotalAmount != 0 {
		fmt.Fprintf(&sb, "💰 *Total Estimasi:* %s\n", FormatRupiah(o.Subtotal()))
		fmt.Fprintf(&sb, "💰 *Total Aktual:* %s\n\n", FormatRupiah(actual.TotalAmount))

		switch diff := actual.TotalAmount - o.Subtotal(); {
		case diff > 0:
			fmt.Fprintf(&sb, "📈 Selisih: +%s\n\n", FormatRupiah(diff))
		case diff < 0:
			fmt.Fprintf(&sb, "📉 Selisih: -%s\n\n", FormatRupiah(-diff))
		}
	}

	if actual != nil && actual.ProofVideoURL != "" {
		sb.WriteString("📹 Video bukti penimbangan tersedia di aplikasi.\n\n")
	}
	sb.WriteString("Terima kasih atas kepercayaan Anda! 🙏")

	return sb.String()
}

// FormatRupiah renders an amount as "Rp 1.234.567".
func FormatRupiah(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var sb strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(d)
	}

	return "Rp " + sign + sb.String()
}

// Compose renders the message of kind for o. Branch notices go to the branch
// phone, customer notices to the order contact.
func Compose(id kernel.UUID, kind Kind, o *order.Order, b Branch, now time.Time) (*Message, error) {
	var body, recipient string
	switch kind {
	case KindBranchNewOrder:
		body, recipient = RenderBranchNewOrder(o, b), b.Phone
	case KindCustomerStatusUpdate:
		body, recipient = RenderCustomerStatusUpdate(o, b), o.Contact().Phone()
	case KindCustomerActualWeight:
		body, recipient = RenderCustomerActualWeight(o, b), o.Contact().Phone()
	default:
		return nil, errs.NewValueIsInvalidError("notification_kind")
	}

	return NewMessage(id, kind, o.ID(), o.Number().String(), recipient, body, now)
}
