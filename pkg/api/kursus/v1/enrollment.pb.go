// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: kursus/v1/enrollment.proto

package kursusv1

import (
	_ "buf.build/gen/go/bufbuild/protovalidate/protocolbuffers/go/buf/validate"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Enrollment struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Course        *Course                `protobuf:"bytes,2,opt,name=course,proto3" json:"course,omitempty"`
	EnrolledAt    *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=enrolled_at,json=enrolledAt,proto3" json:"enrolled_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Enrollment) Reset() {
	*x = Enrollment{}
	mi := &file_kursus_v1_enrollment_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Enrollment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Enrollment) ProtoMessage() {}

func (x *Enrollment) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_enrollment_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Enrollment.ProtoReflect.Descriptor instead.
func (*Enrollment) Descriptor() ([]byte, []int) {
	return file_kursus_v1_enrollment_proto_rawDescGZIP(), []int{0}
}

func (x *Enrollment) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Enrollment) GetCourse() *Course {
	if x != nil {
		return x.Course
	}
	return nil
}

func (x *Enrollment) GetEnrolledAt() *timestamppb.Timestamp {
	if x != nil {
		return x.EnrolledAt
	}
	return nil
}

type Favorite struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Course        *Course                `protobuf:"bytes,2,opt,name=course,proto3" json:"course,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Favorite) Reset() {
	*x = Favorite{}
	mi := &file_kursus_v1_enrollment_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Favorite) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Favorite) ProtoMessage() {}

func (x *Favorite) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_enrollment_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Favorite.ProtoReflect.Descriptor instead.
func (*Favorite) Descriptor() ([]byte, []int) {
	return file_kursus_v1_enrollment_proto_rawDescGZIP(), []int{1}
}

func (x *Favorite) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Favorite) GetCourse() *Course {
	if x != nil {
		return x.Course
	}
	return nil
}

func (x *Favorite) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type EnrollRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CourseId      string                 `protobuf:"bytes,1,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnrollRequest) Reset() {
	*x = EnrollRequest{}
	mi := &file_kursus_v1_enrollment_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnrollRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnrollRequest) ProtoMessage() {}

func (x *EnrollRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_enrollment_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnrollRequest.ProtoReflect.Descriptor instead.
func (*EnrollRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_enrollment_proto_rawDescGZIP(), []int{2}
}

func (x *EnrollRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

type EnrollResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Enrollment    *Enrollment            `protobuf:"bytes,1,opt,name=enrollment,proto3" json:"enrollment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnrollResponse) Reset() {
	*x = EnrollResponse{}
	mi := &file_kursus_v1_enrollment_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnrollResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnrollResponse) ProtoMessage() {}

func (x *EnrollResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_enrollment_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnrollResponse.ProtoReflect.Descriptor instead.
func (*EnrollResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_enrollment_proto_rawDescGZIP(), []int{3}
}

func (x *EnrollResponse) GetEnrollment() *Enrollment {
	if x != nil {
		return x.Enrollment
	}
	return nil
}

type UnenrollRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CourseId      string                 `protobuf:"bytes,1,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnenrollRequest) Reset() {
	*x = UnenrollRequest{}
	mi := &file_kursus_v1_enrollment_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnenrollRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnenrollRequest) ProtoMessage() {}

func (x *UnenrollRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_enrollment_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnenrollRequest.ProtoReflect.Descriptor instead.
func (*UnenrollRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_enrollment_proto_rawDescGZIP(), []int{4}
}

func (x *UnenrollRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

type UnenrollResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnenrollResponse) Reset() {
	*x = UnenrollResponse{}
	mi := &file_kursus_v1_enrollment_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnenrollResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnenrollResponse) ProtoMessage() {}

func (x *UnenrollResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_enrollment_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnenrollResponse.ProtoReflect.Descriptor instead.
func (*UnenrollResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_enrollment_proto_rawDescGZIP(), []int{5}
}

type ListMyEnrollmentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMyEnrollmentsRequest) Reset() {
	*x = ListMyEnrollmentsRequest{}
	mi := &file_kursus_v1_enrollment_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMyEnrollmentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMyEnrollmentsRequest) ProtoMessage() {}

func (x *ListMyEnrollmentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_enrollment_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMyEnrollmentsRequest.ProtoReflect.Descriptor instead.
func (*ListMyEnrollmentsRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_enrollment_proto_rawDescGZIP(), []int{6}
}

type ListMyEnrollmentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Enrollments   []*Enrollment          `protobuf:"bytes,1,rep,name=enrollments,proto3" json:"enrollments,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMyEnrollmentsResponse) Reset() {
	*x = ListMyEnrollmentsResponse{}
	mi := &file_kursus_v1_enrollment_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMyEnrollmentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMyEnrollmentsResponse) ProtoMessage() {}

func (x *ListMyEnrollmentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_enrollment_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMyEnrollmentsResponse.ProtoReflect.Descriptor instead.
func (*ListMyEnrollmentsResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_enrollment_proto_rawDescGZIP(), []int{7}
}

func (x *ListMyEnrollmentsResponse) GetEnrollments() []*Enrollment {
	if x != nil {
		return x.Enrollments
	}
	return nil
}

type FavoriteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CourseId      string                 `protobuf:"bytes,1,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FavoriteRequest) Reset() {
	*x = FavoriteRequest{}
	mi := &file_kursus_v1_enrollment_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FavoriteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FavoriteRequest) ProtoMessage() {}

func (x *FavoriteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_enrollment_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FavoriteRequest.ProtoReflect.Descriptor instead.
func (*FavoriteRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_enrollment_proto_rawDescGZIP(), []int{8}
}

func (x *FavoriteRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

type FavoriteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Favorite      *Favorite              `protobuf:"bytes,1,opt,name=favorite,proto3" json:"favorite,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FavoriteResponse) Reset() {
	*x = FavoriteResponse{}
	mi := &file_kursus_v1_enrollment_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FavoriteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FavoriteResponse) ProtoMessage() {}

func (x *FavoriteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_enrollment_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FavoriteResponse.ProtoReflect.Descriptor instead.
func (*FavoriteResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_enrollment_proto_rawDescGZIP(), []int{9}
}

func (x *FavoriteResponse) GetFavorite() *Favorite {
	if x != nil {
		return x.Favorite
	}
	return nil
}

type UnfavoriteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CourseId      string                 `protobuf:"bytes,1,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnfavoriteRequest) Reset() {
	*x = UnfavoriteRequest{}
	mi := &file_kursus_v1_enrollment_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnfavoriteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnfavoriteRequest) ProtoMessage() {}

func (x *UnfavoriteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_enrollment_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnfavoriteRequest.ProtoReflect.Descriptor instead.
func (*UnfavoriteRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_enrollment_proto_rawDescGZIP(), []int{10}
}

func (x *UnfavoriteRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

type UnfavoriteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnfavoriteResponse) Reset() {
	*x = UnfavoriteResponse{}
	mi := &file_kursus_v1_enrollment_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnfavoriteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnfavoriteResponse) ProtoMessage() {}

func (x *UnfavoriteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_enrollment_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnfavoriteResponse.ProtoReflect.Descriptor instead.
func (*UnfavoriteResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_enrollment_proto_rawDescGZIP(), []int{11}
}

type ListMyFavoritesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMyFavoritesRequest) Reset() {
	*x = ListMyFavoritesRequest{}
	mi := &file_kursus_v1_enrollment_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMyFavoritesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMyFavoritesRequest) ProtoMessage() {}

func (x *ListMyFavoritesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_enrollment_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMyFavoritesRequest.ProtoReflect.Descriptor instead.
func (*ListMyFavoritesRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_enrollment_proto_rawDescGZIP(), []int{12}
}

type ListMyFavoritesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Favorites     []*Favorite            `protobuf:"bytes,1,rep,name=favorites,proto3" json:"favorites,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMyFavoritesResponse) Reset() {
	*x = ListMyFavoritesResponse{}
	mi := &file_kursus_v1_enrollment_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMyFavoritesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMyFavoritesResponse) ProtoMessage() {}

func (x *ListMyFavoritesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_enrollment_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMyFavoritesResponse.ProtoReflect.Descriptor instead.
func (*ListMyFavoritesResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_enrollment_proto_rawDescGZIP(), []int{13}
}

func (x *ListMyFavoritesResponse) GetFavorites() []*Favorite {
	if x != nil {
		return x.Favorites
	}
	return nil
}

var File_kursus_v1_enrollment_proto protoreflect.FileDescriptor

const file_kursus_v1_enrollment_proto_rawDesc = "" +
	"\n" +
	"\x1akursus/v1/enrollment.proto\x12\tkursus.v1\x1a\x1bbuf/validate/validate.proto\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x17kursus/v1/catalog.proto\"\x84\x01\n" +
	"\n" +
	"Enrollment\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12)\n" +
	"\x06course\x18\x02 \x01(\v2\x11.kursus.v1.CourseR\x06course\x12;\n" +
	"\venrolled_at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"enrolledAt\"\x80\x01\n" +
	"\bFavorite\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12)\n" +
	"\x06course\x18\x02 \x01(\v2\x11.kursus.v1.CourseR\x06course\x129\n" +
	"\n" +
	"created_at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\"6\n" +
	"\rEnrollRequest\x12%\n" +
	"\tcourse_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\bcourseId\"G\n" +
	"\x0eEnrollResponse\x125\n" +
	"\n" +
	"enrollment\x18\x01 \x01(\v2\x15.kursus.v1.EnrollmentR\n" +
	"enrollment\"8\n" +
	"\x0fUnenrollRequest\x12%\n" +
	"\tcourse_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\bcourseId\"\x12\n" +
	"\x10UnenrollResponse\"\x1a\n" +
	"\x18ListMyEnrollmentsRequest\"T\n" +
	"\x19ListMyEnrollmentsResponse\x127\n" +
	"\venrollments\x18\x01 \x03(\v2\x15.kursus.v1.EnrollmentR\venrollments\"8\n" +
	"\x0fFavoriteRequest\x12%\n" +
	"\tcourse_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\bcourseId\"C\n" +
	"\x10FavoriteResponse\x12/\n" +
	"\bfavorite\x18\x01 \x01(\v2\x13.kursus.v1.FavoriteR\bfavorite\":\n" +
	"\x11UnfavoriteRequest\x12%\n" +
	"\tcourse_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\bcourseId\"\x14\n" +
	"\x12UnfavoriteResponse\"\x18\n" +
	"\x16ListMyFavoritesRequest\"L\n" +
	"\x17ListMyFavoritesResponse\x121\n" +
	"\tfavorites\x18\x01 \x03(\v2\x13.kursus.v1.FavoriteR\tfavorites2\xe1\x03\n" +
	"\x11EnrollmentService\x12=\n" +
	"\x06Enroll\x12\x18.kursus.v1.EnrollRequest\x1a\x19.kursus.v1.EnrollResponse\x12C\n" +
	"\bUnenroll\x12\x1a.kursus.v1.UnenrollRequest\x1a\x1b.kursus.v1.UnenrollResponse\x12^\n" +
	"\x11ListMyEnrollments\x12#.kursus.v1.ListMyEnrollmentsRequest\x1a$.kursus.v1.ListMyEnrollmentsResponse\x12C\n" +
	"\bFavorite\x12\x1a.kursus.v1.FavoriteRequest\x1a\x1b.kursus.v1.FavoriteResponse\x12I\n" +
	"\n" +
	"Unfavorite\x12\x1c.kursus.v1.UnfavoriteRequest\x1a\x1d.kursus.v1.UnfavoriteResponse\x12X\n" +
	"\x0fListMyFavorites\x12!.kursus.v1.ListMyFavoritesRequest\x1a\".kursus.v1.ListMyFavoritesResponseB8Z6github.com/kursuslab/kursus/pkg/api/kursus/v1;kursusv1b\x06proto3"

var (
	file_kursus_v1_enrollment_proto_rawDescOnce sync.Once
	file_kursus_v1_enrollment_proto_rawDescData []byte
)

func file_kursus_v1_enrollment_proto_rawDescGZIP() []byte {
	file_kursus_v1_enrollment_proto_rawDescOnce.Do(func() {
		file_kursus_v1_enrollment_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_kursus_v1_enrollment_proto_rawDesc), len(file_kursus_v1_enrollment_proto_rawDesc)))
	})
	return file_kursus_v1_enrollment_proto_rawDescData
}

var file_kursus_v1_enrollment_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_kursus_v1_enrollment_proto_goTypes = []any{
	(*Enrollment)(nil),                // 0: kursus.v1.Enrollment
	(*Favorite)(nil),                  // 1: kursus.v1.Favorite
	(*EnrollRequest)(nil),             // 2: kursus.v1.EnrollRequest
	(*EnrollResponse)(nil),            // 3: kursus.v1.EnrollResponse
	(*UnenrollRequest)(nil),           // 4: kursus.v1.UnenrollRequest
	(*UnenrollResponse)(nil),          // 5: kursus.v1.UnenrollResponse
	(*ListMyEnrollmentsRequest)(nil),  // 6: kursus.v1.ListMyEnrollmentsRequest
	(*ListMyEnrollmentsResponse)(nil), // 7: kursus.v1.ListMyEnrollmentsResponse
	(*FavoriteRequest)(nil),           // 8: kursus.v1.FavoriteRequest
	(*FavoriteResponse)(nil),          // 9: kursus.v1.FavoriteResponse
	(*UnfavoriteRequest)(nil),         // 10: kursus.v1.UnfavoriteRequest
	(*UnfavoriteResponse)(nil),        // 11: kursus.v1.UnfavoriteResponse
	(*ListMyFavoritesRequest)(nil),    // 12: kursus.v1.ListMyFavoritesRequest
	(*ListMyFavoritesResponse)(nil),   // 13: kursus.v1.ListMyFavoritesResponse
	(*Course)(nil),                    // 14: kursus.v1.Course
	(*timestamppb.Timestamp)(nil),     // 15: google.protobuf.Timestamp
}
var file_kursus_v1_enrollment_proto_depIdxs = []int32{
	14, // 0: kursus.v1.Enrollment.course:type_name -> kursus.v1.Course
	15, // 1: kursus.v1.Enrollment.enrolled_at:type_name -> google.protobuf.Timestamp
	14, // 2: kursus.v1.Favorite.course:type_name -> kursus.v1.Course
	15, // 3: kursus.v1.Favorite.created_at:type_name -> google.protobuf.Timestamp
	0,  // 4: kursus.v1.EnrollResponse.enrollment:type_name -> kursus.v1.Enrollment
	0,  // 5: kursus.v1.ListMyEnrollmentsResponse.enrollments:type_name -> kursus.v1.Enrollment
	1,  // 6: kursus.v1.FavoriteResponse.favorite:type_name -> kursus.v1.Favorite
	1,  // 7: kursus.v1.ListMyFavoritesResponse.favorites:type_name -> kursus.v1.Favorite
	2,  // 8: kursus.v1.EnrollmentService.Enroll:input_type -> kursus.v1.EnrollRequest
	4,  // 9: kursus.v1.EnrollmentService.Unenroll:input_type -> kursus.v1.UnenrollRequest
	6,  // 10: kursus.v1.EnrollmentService.ListMyEnrollments:input_type -> kursus.v1.ListMyEnrollmentsRequest
	8,  // 11: kursus.v1.EnrollmentService.Favorite:input_type -> kursus.v1.FavoriteRequest
	10, // 12: kursus.v1.EnrollmentService.Unfavorite:input_type -> kursus.v1.UnfavoriteRequest
	12, // 13: kursus.v1.EnrollmentService.ListMyFavorites:input_type -> kursus.v1.ListMyFavoritesRequest
	3,  // 14: kursus.v1.EnrollmentService.Enroll:output_type -> kursus.v1.EnrollResponse
	5,  // 15: kursus.v1.EnrollmentService.Unenroll:output_type -> kursus.v1.UnenrollResponse
	7,  // 16: kursus.v1.EnrollmentService.ListMyEnrollments:output_type -> kursus.v1.ListMyEnrollmentsResponse
	9,  // 17: kursus.v1.EnrollmentService.Favorite:output_type -> kursus.v1.FavoriteResponse
	11, // 18: kursus.v1.EnrollmentService.Unfavorite:output_type -> kursus.v1.UnfavoriteResponse
	13, // 19: kursus.v1.EnrollmentService.ListMyFavorites:output_type -> kursus.v1.ListMyFavoritesResponse
	14, // [14:20] is the sub-list for method output_type
	8,  // [8:14] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_kursus_v1_enrollment_proto_init() }
func file_kursus_v1_enrollment_proto_init() {
	if File_kursus_v1_enrollment_proto != nil {
		return
	}
	file_kursus_v1_catalog_proto_init()
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_kursus_v1_enrollment_proto_rawDesc), len(file_kursus_v1_enrollment_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_kursus_v1_enrollment_proto_goTypes,
		DependencyIndexes: file_kursus_v1_enrollment_proto_depIdxs,
		MessageInfos:      file_kursus_v1_enrollment_proto_msgTypes,
	}.Build()
	File_kursus_v1_enrollment_proto = out.File
	file_kursus_v1_enrollment_proto_goTypes = nil
	file_kursus_v1_enrollment_proto_depIdxs = nil
}
