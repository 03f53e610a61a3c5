package cell

// Hash is a fixed-size 32-byte digest, the storage analogue of ink!'s Hash
// newtype.
type Hash [32]byte

func (h *Hash) PushPacked(enc *Encoder) { enc.WriteRaw(h[:]) }
func (h *Hash) PullPacked(dec *Decoder) { copy(h[:], dec.ReadRaw(32)) }
func (h *Hash) ClearPacked()            { *h = Hash{} }

func (h *Hash) PushSpread(ptr *KeyPtr)  { PushPackedRoot(ptr, h) }
func (h *Hash) PullSpread(ptr *KeyPtr)  { PullPackedRoot(ptr, h) }
func (h *Hash) ClearSpread(ptr *KeyPtr) { ClearPackedRoot(ptr); h.ClearPacked() }
func (h *Hash) Footprint() uint64       { return 1 }

// AccountID is a fixed-size 32-byte account identifier, the storage
// analogue of ink!'s AccountId newtype.
type AccountID [32]byte

func (a *AccountID) PushPacked(enc *Encoder) { enc.WriteRaw(a[:]) }
func (a *AccountID) PullPacked(dec *Decoder) { copy(a[:], dec.ReadRaw(32)) }
func (a *AccountID) ClearPacked()            { *a = AccountID{} }

func (a *AccountID) PushSpread(ptr *KeyPtr)  { PushPackedRoot(ptr, a) }
func (a *AccountID) PullSpread(ptr *KeyPtr)  { PullPackedRoot(ptr, a) }
func (a *AccountID) ClearSpread(ptr *KeyPtr) { ClearPackedRoot(ptr); a.ClearPacked() }
func (a *AccountID) Footprint() uint64       { return 1 }
