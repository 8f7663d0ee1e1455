package vr

import "fmt"

// InitError is the status code reported by Runtime.Init.
type InitError int32

const (
	InitErrorNone                       InitError = 0
	InitErrorUnknown                    InitError = 1
	InitErrorInstallationNotFound       InitError = 100
	InitErrorInstallationCorrupt        InitError = 101
	InitErrorClientDLLNotFound          InitError = 102
	InitErrorFileNotFound               InitError = 103
	InitErrorFactoryNotFound            InitError = 104
	InitErrorInterfaceNotFound          InitError = 105
	InitErrorInvalidInterface           InitError = 106
	InitErrorUserConfigDirectoryInvalid InitError = 107
	InitErrorHmdNotFound                InitError = 108
	InitErrorNotInitialized             InitError = 109
	InitErrorPathRegistryNotFound       InitError = 110
	InitErrorNoConfigPath               InitError = 111
	InitErrorNoLogPath                  InitError = 112
	InitErrorPathRegistryNotWritable    InitError = 113
	InitErrorInitCanceledByUser         InitError = 116
)

var initErrorNames = map[InitError]string{
	InitErrorNone:                       "None",
	InitErrorUnknown:                    "Unknown",
	InitErrorInstallationNotFound:       "Init_InstallationNotFound",
	InitErrorInstallationCorrupt:        "Init_InstallationCorrupt",
	InitErrorClientDLLNotFound:          "Init_VRClientDLLNotFound",
	InitErrorFileNotFound:               "Init_FileNotFound",
	InitErrorFactoryNotFound:            "Init_FactoryNotFound",
	InitErrorInterfaceNotFound:          "Init_InterfaceNotFound",
	InitErrorInvalidInterface:           "Init_InvalidInterface",
	InitErrorUserConfigDirectoryInvalid: "Init_UserConfigDirectoryInvalid",
	InitErrorHmdNotFound:                "Init_HmdNotFound",
	InitErrorNotInitialized:             "Init_NotInitialized",
	InitErrorPathRegistryNotFound:       "Init_PathRegistryNotFound",
	InitErrorNoConfigPath:               "Init_NoConfigPath",
	InitErrorNoLogPath:                  "Init_NoLogPath",
	InitErrorPathRegistryNotWritable:    "Init_PathRegistryNotWritable",
	InitErrorInitCanceledByUser:         "Init_InitCanceledByUser",
}

func (e InitError) String() string {
	if s, ok := initErrorNames[e]; ok {
		return s
	}
	return fmt.Sprintf("InitError(%d)", int32(e))
}

// OverlayError is the status code reported by overlay calls.
type OverlayError int32

const (
	OverlayErrorNone                 OverlayError = 0
	OverlayErrorUnknownOverlay       OverlayError = 10
	OverlayErrorInvalidHandle        OverlayError = 11
	OverlayErrorPermissionDenied     OverlayError = 12
	OverlayErrorOverlayLimitExceeded OverlayError = 13
	OverlayErrorWrongVisibilityType  OverlayError = 14
	OverlayErrorKeyTooLong           OverlayError = 15
	OverlayErrorNameTooLong          OverlayError = 16
	OverlayErrorKeyInUse             OverlayError = 17
	OverlayErrorWrongTransformType   OverlayError = 18
	OverlayErrorInvalidTrackedDevice OverlayError = 19
	OverlayErrorInvalidParameter     OverlayError = 20
	OverlayErrorRequestFailed        OverlayError = 23
	OverlayErrorInvalidTexture       OverlayError = 24
	OverlayErrorUnableToLoadFile     OverlayError = 25
)

var overlayErrorNames = map[OverlayError]string{
	OverlayErrorNone:                 "None",
	OverlayErrorUnknownOverlay:       "UnknownOverlay",
	OverlayErrorInvalidHandle:        "InvalidHandle",
	OverlayErrorPermissionDenied:     "PermissionDenied",
	OverlayErrorOverlayLimitExceeded: "OverlayLimitExceeded",
	OverlayErrorWrongVisibilityType:  "WrongVisibilityType",
	OverlayErrorKeyTooLong:           "KeyTooLong",
	OverlayErrorNameTooLong:          "NameTooLong",
	OverlayErrorKeyInUse:             "KeyInUse",
	OverlayErrorWrongTransformType:   "WrongTransformType",
	OverlayErrorInvalidTrackedDevice: "InvalidTrackedDevice",
	OverlayErrorInvalidParameter:     "InvalidParameter",
	OverlayErrorRequestFailed:        "RequestFailed",
	OverlayErrorInvalidTexture:       "InvalidTexture",
	OverlayErrorUnableToLoadFile:     "UnableToLoadFile",
}

func (e OverlayError) String() string {
	if s, ok := overlayErrorNames[e]; ok {
		return s
	}
	return fmt.Sprintf("OverlayError(%d)", int32(e))
}
