package ledger

// Ledger read transaction types (indy-node protocol version 2)
const (
	GetAttr          = "104"
	GetNym           = "105"
	GetSchema        = "107"
	GetCredDef       = "108"
	GetRevocRegDef   = "115"
	GetRevocReg      = "116"
	GetRevocRegDelta = "117"
)
