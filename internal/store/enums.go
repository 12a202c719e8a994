package store

// Founder account statuses
const (
	FounderStatusActive   = "active"
	FounderStatusInactive = "inactive"
)

// Referral statuses
const (
	ReferralStatusPending = "pending"
	ReferralStatusActive  = "active"
)

// Referred entity types
const (
	ReferredTypeMember   = "member"
	ReferredTypeProvider = "provider"
)

// Commission statuses
const (
	CommissionStatusApproved = "approved"
	CommissionStatusPaid     = "paid"
	CommissionStatusReversed = "reversed"
)

// Commission types
const (
	CommissionTypeBidPack     = "bid_pack"
	CommissionTypePlatformFee = "platform_fee"
	CommissionTypeOther       = "other"
)

// Payout statuses
const (
	PayoutStatusPending    = "pending"
	PayoutStatusProcessing = "processing"
	PayoutStatusCompleted  = "completed"
	PayoutStatusFailed     = "failed"
)

// Payout methods
const (
	PayoutMethodStripeConnect = "stripe_connect"
	PayoutMethodPayPal        = "paypal"
	PayoutMethodVenmo         = "venmo"
	PayoutMethodZelle         = "zelle"
	PayoutMethodBankTransfer  = "bank_transfer"
	PayoutMethodCheck         = "check"
)

// IsValidPayoutMethod reports whether method is a supported payout method
func IsValidPayoutMethod(method string) bool {
	validMethods := map[string]bool{
		PayoutMethodStripeConnect: true,
		PayoutMethodPayPal:        true,
		PayoutMethodVenmo:         true,
		PayoutMethodZelle:         true,
		PayoutMethodBankTransfer:  true,
		PayoutMethodCheck:         true,
	}
	return validMethods[method]
}

// IsValidReferredType reports whether t is a supported referred entity type
func IsValidReferredType(t string) bool {
	return t == ReferredTypeMember || t == ReferredTypeProvider
}

// IsValidCommissionType reports whether t is a supported commission type
func IsValidCommissionType(t string) bool {
	return t == CommissionTypeBidPack || t == CommissionTypePlatformFee || t == CommissionTypeOther
}
