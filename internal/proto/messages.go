package proto

// Message type IDs. In a real ESPHome build these are emitted by protoc
// from the `id` option on each message in api.proto; here they are a fixed,
// hand-maintained registry standing in for that generated constant table.
const (
	TypeHelloRequest    uint32 = 1
	TypeHelloResponse   uint32 = 2
	TypeConnectRequest  uint32 = 3
	TypeConnectResponse uint32 = 4

	TypeDisconnectRequest  uint32 = 5
	TypeDisconnectResponse uint32 = 6
	TypePingRequest        uint32 = 7
	TypePingResponse       uint32 = 8
	TypeGetTimeRequest     uint32 = 9
	TypeGetTimeResponse    uint32 = 10

	TypeDeviceInfoRequest  uint32 = 11
	TypeDeviceInfoResponse uint32 = 12

	TypeListEntitiesRequest     uint32 = 13
	TypeListEntitiesDoneResponse uint32 = 14
	TypeSubscribeStatesRequest   uint32 = 15

	TypeListEntitiesBinarySensorResponse     uint32 = 20
	TypeListEntitiesButtonResponse           uint32 = 21
	TypeListEntitiesCameraResponse           uint32 = 22
	TypeListEntitiesClimateResponse          uint32 = 23
	TypeListEntitiesCoverResponse            uint32 = 24
	TypeListEntitiesDateResponse             uint32 = 25
	TypeListEntitiesDateTimeResponse         uint32 = 26
	TypeListEntitiesEventResponse            uint32 = 27
	TypeListEntitiesFanResponse              uint32 = 28
	TypeListEntitiesLightResponse            uint32 = 29
	TypeListEntitiesLockResponse             uint32 = 30
	TypeListEntitiesMediaPlayerResponse      uint32 = 31
	TypeListEntitiesNumberResponse           uint32 = 32
	TypeListEntitiesSelectResponse           uint32 = 33
	TypeListEntitiesSensorResponse           uint32 = 34
	TypeListEntitiesSwitchResponse           uint32 = 35
	TypeListEntitiesTextResponse             uint32 = 36
	TypeListEntitiesTextSensorResponse       uint32 = 37
	TypeListEntitiesTimeResponse             uint32 = 38
	TypeListEntitiesUpdateResponse           uint32 = 39
	TypeListEntitiesValveResponse            uint32 = 40
	TypeListEntitiesAlarmControlPanelResponse uint32 = 41
	TypeListEntitiesServicesResponse          uint32 = 42

	TypeBinarySensorStateResponse     uint32 = 60
	TypeClimateStateResponse          uint32 = 61
	TypeCoverStateResponse            uint32 = 62
	TypeDateStateResponse             uint32 = 63
	TypeDateTimeStateResponse         uint32 = 64
	TypeEventStateResponse            uint32 = 65
	TypeFanStateResponse              uint32 = 66
	TypeLightStateResponse            uint32 = 67
	TypeLockStateResponse             uint32 = 68
	TypeMediaPlayerStateResponse      uint32 = 69
	TypeNumberStateResponse           uint32 = 70
	TypeSelectStateResponse           uint32 = 71
	TypeSensorStateResponse           uint32 = 72
	TypeSwitchStateResponse           uint32 = 73
	TypeTextStateResponse             uint32 = 74
	TypeTextSensorStateResponse       uint32 = 75
	TypeTimeStateResponse             uint32 = 76
	TypeUpdateStateResponse           uint32 = 77
	TypeValveStateResponse            uint32 = 78
	TypeAlarmControlPanelStateResponse uint32 = 79

	TypeCoverCommandRequest   uint32 = 90
	TypeFanCommandRequest     uint32 = 91
	TypeLightCommandRequest   uint32 = 92
	TypeSwitchCommandRequest  uint32 = 93
	TypeClimateCommandRequest uint32 = 94
	TypeNumberCommandRequest  uint32 = 95
	TypeSelectCommandRequest  uint32 = 96
	TypeLockCommandRequest    uint32 = 97
	TypeButtonCommandRequest  uint32 = 98
	TypeValveCommandRequest   uint32 = 99
	TypeDateCommandRequest    uint32 = 100
	TypeDateTimeCommandRequest uint32 = 101
	TypeTimeCommandRequest    uint32 = 102
	TypeTextCommandRequest    uint32 = 103
	TypeMediaPlayerCommandRequest uint32 = 104
)

// HelloRequest is the first message sent over a connected codec.
type HelloRequest struct {
	ClientInfo      string
	APIVersionMajor uint32
	APIVersionMinor uint32
}

func (m *HelloRequest) TypeID() uint32 { return TypeHelloRequest }

func (m *HelloRequest) Encode() []byte {
	return newFieldWriter().
		String(1, m.ClientInfo).
		Uint32(2, m.APIVersionMajor).
		Uint32(3, m.APIVersionMinor).
		Bytes_()
}

// HelloResponse is the server's reply to HelloRequest.
type HelloResponse struct {
	APIVersionMajor uint32
	APIVersionMinor uint32
	ServerInfo      string
	Name            string
}

func DecodeHelloResponse(data []byte) *HelloResponse {
	m := &HelloResponse{}
	r := newFieldReader(data)
	for {
		field, _, raw, val, ok := r.Next()
		if !ok {
			break
		}
		switch field {
		case 1:
			m.APIVersionMajor = uint32(val)
		case 2:
			m.APIVersionMinor = uint32(val)
		case 3:
			m.ServerInfo = string(raw)
		case 4:
			m.Name = string(raw)
		}
	}
	return m
}

// ConnectRequest carries the plaintext password for the optional login step.
type ConnectRequest struct {
	Password string
}

func (m *ConnectRequest) TypeID() uint32 { return TypeConnectRequest }

func (m *ConnectRequest) Encode() []byte {
	return newFieldWriter().String(1, m.Password).Bytes_()
}

// ConnectResponse reports whether the login step succeeded.
type ConnectResponse struct {
	InvalidPassword bool
}

func DecodeConnectResponse(data []byte) *ConnectResponse {
	m := &ConnectResponse{}
	r := newFieldReader(data)
	for {
		field, _, _, val, ok := r.Next()
		if !ok {
			break
		}
		if field == 1 {
			m.InvalidPassword = val != 0
		}
	}
	return m
}

// DisconnectRequest asks the peer to tear down the connection.
type DisconnectRequest struct{}

func (m *DisconnectRequest) TypeID() uint32 { return TypeDisconnectRequest }
func (m *DisconnectRequest) Encode() []byte { return nil }

// DisconnectResponse acknowledges a DisconnectRequest.
type DisconnectResponse struct{}

func (m *DisconnectResponse) TypeID() uint32 { return TypeDisconnectResponse }
func (m *DisconnectResponse) Encode() []byte { return nil }

// PingRequest is sent periodically as a keep-alive heartbeat.
type PingRequest struct{}

func (m *PingRequest) TypeID() uint32 { return TypePingRequest }
func (m *PingRequest) Encode() []byte { return nil }

// PingResponse acknowledges a PingRequest.
type PingResponse struct{}

func (m *PingResponse) TypeID() uint32 { return TypePingResponse }
func (m *PingResponse) Encode() []byte { return nil }

// GetTimeRequest asks the client for the current Unix time.
type GetTimeRequest struct{}

func (m *GetTimeRequest) TypeID() uint32 { return TypeGetTimeRequest }
func (m *GetTimeRequest) Encode() []byte { return nil }

// GetTimeResponse carries the current Unix time in seconds.
type GetTimeResponse struct {
	EpochSeconds uint32
}

func (m *GetTimeResponse) TypeID() uint32 { return TypeGetTimeResponse }

func (m *GetTimeResponse) Encode() []byte {
	return newFieldWriter().Uint32(1, m.EpochSeconds).Bytes_()
}

// DeviceInfoRequest asks for the device's static descriptor.
type DeviceInfoRequest struct{}

func (m *DeviceInfoRequest) TypeID() uint32 { return TypeDeviceInfoRequest }
func (m *DeviceInfoRequest) Encode() []byte { return nil }

// DeviceInfoResponse is the device's static descriptor.
type DeviceInfoResponse struct {
	UsesPassword                bool
	Name                        string
	FriendlyName                string
	MacAddress                  string
	CompilationTime             string
	Model                       string
	Manufacturer                string
	HasDeepSleep                bool
	ESPHomeVersion              string
	ProjectName                 string
	ProjectVersion              string
	WebserverPort               uint32
	LegacyVoiceAssistantVersion uint32
	VoiceAssistantFeatureFlags  uint32
	LegacyBluetoothProxyVersion uint32
	BluetoothProxyFeatureFlags  uint32
	SuggestedArea               string
}

func DecodeDeviceInfoResponse(data []byte) *DeviceInfoResponse {
	m := &DeviceInfoResponse{}
	r := newFieldReader(data)
	for {
		field, _, raw, val, ok := r.Next()
		if !ok {
			break
		}
		switch field {
		case 1:
			m.UsesPassword = val != 0
		case 2:
			m.Name = string(raw)
		case 3:
			m.MacAddress = string(raw)
		case 4:
			m.ESPHomeVersion = string(raw)
		case 5:
			m.CompilationTime = string(raw)
		case 6:
			m.Model = string(raw)
		case 7:
			m.HasDeepSleep = val != 0
		case 8:
			m.ProjectName = string(raw)
		case 9:
			m.ProjectVersion = string(raw)
		case 10:
			m.WebserverPort = uint32(val)
		case 11:
			m.LegacyVoiceAssistantVersion = uint32(val)
		case 12:
			m.VoiceAssistantFeatureFlags = uint32(val)
		case 13:
			m.LegacyBluetoothProxyVersion = uint32(val)
		case 14:
			m.BluetoothProxyFeatureFlags = uint32(val)
		case 15:
			m.Manufacturer = string(raw)
		case 16:
			m.FriendlyName = string(raw)
		case 17:
			m.SuggestedArea = string(raw)
		}
	}
	return m
}

// ListEntitiesRequest starts the one-shot entity/service enumeration stream.
type ListEntitiesRequest struct{}

func (m *ListEntitiesRequest) TypeID() uint32 { return TypeListEntitiesRequest }
func (m *ListEntitiesRequest) Encode() []byte { return nil }

// ListEntitiesDoneResponse terminates the enumeration stream.
type ListEntitiesDoneResponse struct{}

// SubscribeStatesRequest starts the long-lived state subscription.
type SubscribeStatesRequest struct{}

func (m *SubscribeStatesRequest) TypeID() uint32 { return TypeSubscribeStatesRequest }
func (m *SubscribeStatesRequest) Encode() []byte { return nil }

// EntityCategory mirrors ESPHome's entity_category enum.
type EntityCategory int32

const (
	EntityCategoryNone       EntityCategory = 0
	EntityCategoryConfig     EntityCategory = 1
	EntityCategoryDiagnostic EntityCategory = 2
)

// baseEntityInfo fields shared by every ListEntitiesXResponse message.
type baseEntityInfo struct {
	ObjectID          string
	Key               uint32
	Name              string
	UniqueID          string
	Icon              string
	DisabledByDefault bool
	EntityCategory    EntityCategory
}

func (b *baseEntityInfo) applyField(field int, raw []byte, val uint64) bool {
	switch field {
	case 1:
		b.ObjectID = string(raw)
	case 2:
		b.Key = uint32(val)
	case 3:
		b.Name = string(raw)
	case 4:
		b.UniqueID = string(raw)
	case 5:
		b.Icon = string(raw)
	case 6:
		b.DisabledByDefault = val != 0
	case 7:
		b.EntityCategory = EntityCategory(val)
	default:
		return false
	}
	return true
}

func (b *baseEntityInfo) write(w *fieldWriter) *fieldWriter {
	return w.String(1, b.ObjectID).
		Uint32(2, b.Key).
		String(3, b.Name).
		String(4, b.UniqueID).
		String(5, b.Icon).
		Bool(6, b.DisabledByDefault).
		Int32(7, int32(b.EntityCategory))
}
