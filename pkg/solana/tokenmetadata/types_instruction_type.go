package tokenmetadata

// InstructionType is the Borsh enum index of a token metadata instruction.
//
// Retired variants keep their index, so the values are not contiguous.
type InstructionType uint8

const (
	InstructionTypeCreateMetadataAccount                   InstructionType = 0
	InstructionTypeUpdateMetadataAccount                   InstructionType = 1
	InstructionTypeUpdatePrimarySaleHappenedViaToken       InstructionType = 4
	InstructionTypeSignMetadata                            InstructionType = 7
	InstructionTypeCreateMasterEdition                     InstructionType = 10
	InstructionTypeMintNewEditionFromMasterEditionViaToken InstructionType = 11
	InstructionTypeConvertMasterEditionV1ToV2              InstructionType = 12
	InstructionTypeUpdateMetadataAccountV2                 InstructionType = 15
	InstructionTypeCreateMetadataAccountV2                 InstructionType = 16
	InstructionTypeCreateMasterEditionV3                   InstructionType = 17
	InstructionTypeVerifyCollection                        InstructionType = 18
	InstructionTypeUtilize                                 InstructionType = 19
	InstructionTypeApproveUseAuthority                     InstructionType = 20
	InstructionTypeRevokeUseAuthority                      InstructionType = 21
	InstructionTypeUnverifyCollection                      InstructionType = 22
	InstructionTypeApproveCollectionAuthority              InstructionType = 23
	InstructionTypeRevokeCollectionAuthority               InstructionType = 24
	InstructionTypeSetAndVerifyCollection                  InstructionType = 25
	InstructionTypeRemoveCreatorVerification               InstructionType = 28
)

// GetInstructionType returns the instruction type encoded in the first byte
// of the instruction data.
func GetInstructionType(data []byte) (InstructionType, error) {
	if len(data) == 0 {
		return 0, ErrInvalidInstructionData
	}
	return InstructionType(data[0]), nil
}
