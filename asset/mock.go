package asset

import "github.com/wilsoncusack/crowdfund/identity"

// MockNFTContract is a test double for NFTContract.
// All function fields must be set before the corresponding method is called,
// except SupportsFn which defaults to reporting the capability as present.
type MockNFTContract struct {
	SupportsFn      func() bool
	MintFn          func(data string, shares uint64) (uint64, error)
	AcceptOfferFn   func(tokenID, offer uint64) error
	SetTokenURIFn   func(id uint64, uri string) error
	SetContentURIFn func(id uint64, uri string) error
	TransferFn      func(id uint64, to identity.Address) error
}

func (m *MockNFTContract) SupportsNFTCapability() bool {
	if m.SupportsFn == nil {
		return true
	}
	return m.SupportsFn()
}

func (m *MockNFTContract) Mint(data string, shares uint64) (uint64, error) {
	return m.MintFn(data, shares)
}

func (m *MockNFTContract) AcceptOffer(tokenID, offer uint64) error {
	return m.AcceptOfferFn(tokenID, offer)
}

func (m *MockNFTContract) SetTokenURI(id uint64, uri string) error {
	return m.SetTokenURIFn(id, uri)
}

func (m *MockNFTContract) SetContentURI(id uint64, uri string) error {
	return m.SetContentURIFn(id, uri)
}

func (m *MockNFTContract) Transfer(id uint64, to identity.Address) error {
	return m.TransferFn(id, to)
}

// MockValueBridge is a test double for ValueBridge.
type MockValueBridge struct {
	UnwrapFn func(amount uint64) error
}

func (m *MockValueBridge) Unwrap(amount uint64) error {
	return m.UnwrapFn(amount)
}

// MockPaymentRail is a test double for PaymentRail. If TransferFn is nil,
// transfers succeed and are recorded in Sent.
type MockPaymentRail struct {
	TransferFn func(to identity.Address, amount uint64) error
	Sent       []Payment
}

// Payment records one outbound transfer seen by MockPaymentRail.
type Payment struct {
	To     identity.Address
	Amount uint64
}

func (m *MockPaymentRail) Transfer(to identity.Address, amount uint64) error {
	if m.TransferFn != nil {
		if err := m.TransferFn(to, amount); err != nil {
			return err
		}
	}
	m.Sent = append(m.Sent, Payment{To: to, Amount: amount})
	return nil
}
