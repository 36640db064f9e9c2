// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: kursus/v1/lesson.proto

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

type Lesson struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CourseId      string                 `protobuf:"bytes,2,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	Title         string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	VideoUrl      string                 `protobuf:"bytes,4,opt,name=video_url,json=videoUrl,proto3" json:"video_url,omitempty"`
	Content       string                 `protobuf:"bytes,5,opt,name=content,proto3" json:"content,omitempty"`
	Position      int32                  `protobuf:"varint,6,opt,name=position,proto3" json:"position,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Lesson) Reset() {
	*x = Lesson{}
	mi := &file_kursus_v1_lesson_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Lesson) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Lesson) ProtoMessage() {}

func (x *Lesson) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_lesson_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Lesson.ProtoReflect.Descriptor instead.
func (*Lesson) Descriptor() ([]byte, []int) {
	return file_kursus_v1_lesson_proto_rawDescGZIP(), []int{0}
}

func (x *Lesson) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Lesson) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

func (x *Lesson) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Lesson) GetVideoUrl() string {
	if x != nil {
		return x.VideoUrl
	}
	return ""
}

func (x *Lesson) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *Lesson) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

func (x *Lesson) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Lesson) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

// LessonStub is the table-of-contents view of a lesson.
type LessonStub struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Position      int32                  `protobuf:"varint,3,opt,name=position,proto3" json:"position,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LessonStub) Reset() {
	*x = LessonStub{}
	mi := &file_kursus_v1_lesson_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LessonStub) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LessonStub) ProtoMessage() {}

func (x *LessonStub) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_lesson_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LessonStub.ProtoReflect.Descriptor instead.
func (*LessonStub) Descriptor() ([]byte, []int) {
	return file_kursus_v1_lesson_proto_rawDescGZIP(), []int{1}
}

func (x *LessonStub) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *LessonStub) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *LessonStub) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

type CreateLessonRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CourseId      string                 `protobuf:"bytes,1,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Position      int32                  `protobuf:"varint,3,opt,name=position,proto3" json:"position,omitempty"`
	VideoUrl      string                 `protobuf:"bytes,4,opt,name=video_url,json=videoUrl,proto3" json:"video_url,omitempty"`
	Content       string                 `protobuf:"bytes,5,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateLessonRequest) Reset() {
	*x = CreateLessonRequest{}
	mi := &file_kursus_v1_lesson_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateLessonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateLessonRequest) ProtoMessage() {}

func (x *CreateLessonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_lesson_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateLessonRequest.ProtoReflect.Descriptor instead.
func (*CreateLessonRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_lesson_proto_rawDescGZIP(), []int{2}
}

func (x *CreateLessonRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

func (x *CreateLessonRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *CreateLessonRequest) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

func (x *CreateLessonRequest) GetVideoUrl() string {
	if x != nil {
		return x.VideoUrl
	}
	return ""
}

func (x *CreateLessonRequest) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type CreateLessonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Lesson        *Lesson                `protobuf:"bytes,1,opt,name=lesson,proto3" json:"lesson,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateLessonResponse) Reset() {
	*x = CreateLessonResponse{}
	mi := &file_kursus_v1_lesson_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateLessonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateLessonResponse) ProtoMessage() {}

func (x *CreateLessonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_lesson_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateLessonResponse.ProtoReflect.Descriptor instead.
func (*CreateLessonResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_lesson_proto_rawDescGZIP(), []int{3}
}

func (x *CreateLessonResponse) GetLesson() *Lesson {
	if x != nil {
		return x.Lesson
	}
	return nil
}

type GetLessonRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LessonId      string                 `protobuf:"bytes,1,opt,name=lesson_id,json=lessonId,proto3" json:"lesson_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLessonRequest) Reset() {
	*x = GetLessonRequest{}
	mi := &file_kursus_v1_lesson_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLessonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLessonRequest) ProtoMessage() {}

func (x *GetLessonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_lesson_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLessonRequest.ProtoReflect.Descriptor instead.
func (*GetLessonRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_lesson_proto_rawDescGZIP(), []int{4}
}

func (x *GetLessonRequest) GetLessonId() string {
	if x != nil {
		return x.LessonId
	}
	return ""
}

type GetLessonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Lesson        *Lesson                `protobuf:"bytes,1,opt,name=lesson,proto3" json:"lesson,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLessonResponse) Reset() {
	*x = GetLessonResponse{}
	mi := &file_kursus_v1_lesson_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLessonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLessonResponse) ProtoMessage() {}

func (x *GetLessonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_lesson_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLessonResponse.ProtoReflect.Descriptor instead.
func (*GetLessonResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_lesson_proto_rawDescGZIP(), []int{5}
}

func (x *GetLessonResponse) GetLesson() *Lesson {
	if x != nil {
		return x.Lesson
	}
	return nil
}

type ListLessonStubsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CourseId      string                 `protobuf:"bytes,1,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLessonStubsRequest) Reset() {
	*x = ListLessonStubsRequest{}
	mi := &file_kursus_v1_lesson_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLessonStubsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLessonStubsRequest) ProtoMessage() {}

func (x *ListLessonStubsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_lesson_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLessonStubsRequest.ProtoReflect.Descriptor instead.
func (*ListLessonStubsRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_lesson_proto_rawDescGZIP(), []int{6}
}

func (x *ListLessonStubsRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

type ListLessonStubsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Lessons       []*LessonStub          `protobuf:"bytes,1,rep,name=lessons,proto3" json:"lessons,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLessonStubsResponse) Reset() {
	*x = ListLessonStubsResponse{}
	mi := &file_kursus_v1_lesson_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLessonStubsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLessonStubsResponse) ProtoMessage() {}

func (x *ListLessonStubsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_lesson_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLessonStubsResponse.ProtoReflect.Descriptor instead.
func (*ListLessonStubsResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_lesson_proto_rawDescGZIP(), []int{7}
}

func (x *ListLessonStubsResponse) GetLessons() []*LessonStub {
	if x != nil {
		return x.Lessons
	}
	return nil
}

type UpdateLessonRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LessonId      string                 `protobuf:"bytes,1,opt,name=lesson_id,json=lessonId,proto3" json:"lesson_id,omitempty"`
	Title         *string                `protobuf:"bytes,2,opt,name=title,proto3,oneof" json:"title,omitempty"`
	VideoUrl      *string                `protobuf:"bytes,3,opt,name=video_url,json=videoUrl,proto3,oneof" json:"video_url,omitempty"`
	Content       *string                `protobuf:"bytes,4,opt,name=content,proto3,oneof" json:"content,omitempty"`
	Position      *int32                 `protobuf:"varint,5,opt,name=position,proto3,oneof" json:"position,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateLessonRequest) Reset() {
	*x = UpdateLessonRequest{}
	mi := &file_kursus_v1_lesson_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateLessonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateLessonRequest) ProtoMessage() {}

func (x *UpdateLessonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_lesson_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateLessonRequest.ProtoReflect.Descriptor instead.
func (*UpdateLessonRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_lesson_proto_rawDescGZIP(), []int{8}
}

func (x *UpdateLessonRequest) GetLessonId() string {
	if x != nil {
		return x.LessonId
	}
	return ""
}

func (x *UpdateLessonRequest) GetTitle() string {
	if x != nil && x.Title != nil {
		return *x.Title
	}
	return ""
}

func (x *UpdateLessonRequest) GetVideoUrl() string {
	if x != nil && x.VideoUrl != nil {
		return *x.VideoUrl
	}
	return ""
}

func (x *UpdateLessonRequest) GetContent() string {
	if x != nil && x.Content != nil {
		return *x.Content
	}
	return ""
}

func (x *UpdateLessonRequest) GetPosition() int32 {
	if x != nil && x.Position != nil {
		return *x.Position
	}
	return 0
}

type UpdateLessonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Lesson        *Lesson                `protobuf:"bytes,1,opt,name=lesson,proto3" json:"lesson,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateLessonResponse) Reset() {
	*x = UpdateLessonResponse{}
	mi := &file_kursus_v1_lesson_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateLessonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateLessonResponse) ProtoMessage() {}

func (x *UpdateLessonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_lesson_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateLessonResponse.ProtoReflect.Descriptor instead.
func (*UpdateLessonResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_lesson_proto_rawDescGZIP(), []int{9}
}

func (x *UpdateLessonResponse) GetLesson() *Lesson {
	if x != nil {
		return x.Lesson
	}
	return nil
}

type MoveLessonRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LessonId      string                 `protobuf:"bytes,1,opt,name=lesson_id,json=lessonId,proto3" json:"lesson_id,omitempty"`
	Position      int32                  `protobuf:"varint,2,opt,name=position,proto3" json:"position,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MoveLessonRequest) Reset() {
	*x = MoveLessonRequest{}
	mi := &file_kursus_v1_lesson_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MoveLessonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MoveLessonRequest) ProtoMessage() {}

func (x *MoveLessonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_lesson_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MoveLessonRequest.ProtoReflect.Descriptor instead.
func (*MoveLessonRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_lesson_proto_rawDescGZIP(), []int{10}
}

func (x *MoveLessonRequest) GetLessonId() string {
	if x != nil {
		return x.LessonId
	}
	return ""
}

func (x *MoveLessonRequest) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

type MoveLessonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Lesson        *Lesson                `protobuf:"bytes,1,opt,name=lesson,proto3" json:"lesson,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MoveLessonResponse) Reset() {
	*x = MoveLessonResponse{}
	mi := &file_kursus_v1_lesson_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MoveLessonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MoveLessonResponse) ProtoMessage() {}

func (x *MoveLessonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_lesson_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MoveLessonResponse.ProtoReflect.Descriptor instead.
func (*MoveLessonResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_lesson_proto_rawDescGZIP(), []int{11}
}

func (x *MoveLessonResponse) GetLesson() *Lesson {
	if x != nil {
		return x.Lesson
	}
	return nil
}

type DeleteLessonRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LessonId      string                 `protobuf:"bytes,1,opt,name=lesson_id,json=lessonId,proto3" json:"lesson_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteLessonRequest) Reset() {
	*x = DeleteLessonRequest{}
	mi := &file_kursus_v1_lesson_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteLessonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteLessonRequest) ProtoMessage() {}

func (x *DeleteLessonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_lesson_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteLessonRequest.ProtoReflect.Descriptor instead.
func (*DeleteLessonRequest) Descriptor() ([]byte, []int) {
	return file_kursus_v1_lesson_proto_rawDescGZIP(), []int{12}
}

func (x *DeleteLessonRequest) GetLessonId() string {
	if x != nil {
		return x.LessonId
	}
	return ""
}

type DeleteLessonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteLessonResponse) Reset() {
	*x = DeleteLessonResponse{}
	mi := &file_kursus_v1_lesson_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteLessonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteLessonResponse) ProtoMessage() {}

func (x *DeleteLessonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_kursus_v1_lesson_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteLessonResponse.ProtoReflect.Descriptor instead.
func (*DeleteLessonResponse) Descriptor() ([]byte, []int) {
	return file_kursus_v1_lesson_proto_rawDescGZIP(), []int{13}
}

var File_kursus_v1_lesson_proto protoreflect.FileDescriptor

const file_kursus_v1_lesson_proto_rawDesc = "" +
	"\n" +
	"\x16kursus/v1/lesson.proto\x12\tkursus.v1\x1a\x1bbuf/validate/validate.proto\x1a\x1fgoogle/protobuf/timestamp.proto\"\x94\x02\n" +
	"\x06Lesson\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tcourse_id\x18\x02 \x01(\tR\bcourseId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12\x1b\n" +
	"\tvideo_url\x18\x04 \x01(\tR\bvideoUrl\x12\x18\n" +
	"\acontent\x18\x05 \x01(\tR\acontent\x12\x1a\n" +
	"\bposition\x18\x06 \x01(\x05R\bposition\x129\n" +
	"\n" +
	"created_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"N\n" +
	"\n" +
	"LessonStub\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x1a\n" +
	"\bposition\x18\x03 \x01(\x05R\bposition\"\xb7\x01\n" +
	"\x13CreateLessonRequest\x12%\n" +
	"\tcourse_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\bcourseId\x12\x1d\n" +
	"\x05title\x18\x02 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\x05title\x12#\n" +
	"\bposition\x18\x03 \x01(\x05B\a\xbaH\x04\x1a\x02(\x01R\bposition\x12\x1b\n" +
	"\tvideo_url\x18\x04 \x01(\tR\bvideoUrl\x12\x18\n" +
	"\acontent\x18\x05 \x01(\tR\acontent\"A\n" +
	"\x14CreateLessonResponse\x12)\n" +
	"\x06lesson\x18\x01 \x01(\v2\x11.kursus.v1.LessonR\x06lesson\"9\n" +
	"\x10GetLessonRequest\x12%\n" +
	"\tlesson_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\blessonId\">\n" +
	"\x11GetLessonResponse\x12)\n" +
	"\x06lesson\x18\x01 \x01(\v2\x11.kursus.v1.LessonR\x06lesson\"?\n" +
	"\x16ListLessonStubsRequest\x12%\n" +
	"\tcourse_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\bcourseId\"J\n" +
	"\x17ListLessonStubsResponse\x12/\n" +
	"\alessons\x18\x01 \x03(\v2\x15.kursus.v1.LessonStubR\alessons\"\xf3\x01\n" +
	"\x13UpdateLessonRequest\x12%\n" +
	"\tlesson_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\blessonId\x12\x19\n" +
	"\x05title\x18\x02 \x01(\tH\x00R\x05title\x88\x01\x01\x12 \n" +
	"\tvideo_url\x18\x03 \x01(\tH\x01R\bvideoUrl\x88\x01\x01\x12\x1d\n" +
	"\acontent\x18\x04 \x01(\tH\x02R\acontent\x88\x01\x01\x12(\n" +
	"\bposition\x18\x05 \x01(\x05B\a\xbaH\x04\x1a\x02(\x01H\x03R\bposition\x88\x01\x01B\b\n" +
	"\x06_titleB\f\n" +
	"\n" +
	"_video_urlB\n" +
	"\n" +
	"\b_contentB\v\n" +
	"\t_position\"A\n" +
	"\x14UpdateLessonResponse\x12)\n" +
	"\x06lesson\x18\x01 \x01(\v2\x11.kursus.v1.LessonR\x06lesson\"_\n" +
	"\x11MoveLessonRequest\x12%\n" +
	"\tlesson_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\blessonId\x12#\n" +
	"\bposition\x18\x02 \x01(\x05B\a\xbaH\x04\x1a\x02(\x01R\bposition\"?\n" +
	"\x12MoveLessonResponse\x12)\n" +
	"\x06lesson\x18\x01 \x01(\v2\x11.kursus.v1.LessonR\x06lesson\"<\n" +
	"\x13DeleteLessonRequest\x12%\n" +
	"\tlesson_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\blessonId\"\x16\n" +
	"\x14DeleteLessonResponse2\xef\x03\n" +
	"\rLessonService\x12O\n" +
	"\fCreateLesson\x12\x1e.kursus.v1.CreateLessonRequest\x1a\x1f.kursus.v1.CreateLessonResponse\x12F\n" +
	"\tGetLesson\x12\x1b.kursus.v1.GetLessonRequest\x1a\x1c.kursus.v1.GetLessonResponse\x12X\n" +
	"\x0fListLessonStubs\x12!.kursus.v1.ListLessonStubsRequest\x1a\".kursus.v1.ListLessonStubsResponse\x12O\n" +
	"\fUpdateLesson\x12\x1e.kursus.v1.UpdateLessonRequest\x1a\x1f.kursus.v1.UpdateLessonResponse\x12I\n" +
	"\n" +
	"MoveLesson\x12\x1c.kursus.v1.MoveLessonRequest\x1a\x1d.kursus.v1.MoveLessonResponse\x12O\n" +
	"\fDeleteLesson\x12\x1e.kursus.v1.DeleteLessonRequest\x1a\x1f.kursus.v1.DeleteLessonResponseB8Z6github.com/kursuslab/kursus/pkg/api/kursus/v1;kursusv1b\x06proto3"

var (
	file_kursus_v1_lesson_proto_rawDescOnce sync.Once
	file_kursus_v1_lesson_proto_rawDescData []byte
)

func file_kursus_v1_lesson_proto_rawDescGZIP() []byte {
	file_kursus_v1_lesson_proto_rawDescOnce.Do(func() {
		file_kursus_v1_lesson_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_kursus_v1_lesson_proto_rawDesc), len(file_kursus_v1_lesson_proto_rawDesc)))
	})
	return file_kursus_v1_lesson_proto_rawDescData
}

var file_kursus_v1_lesson_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_kursus_v1_lesson_proto_goTypes = []any{
	(*Lesson)(nil),                  // 0: kursus.v1.Lesson
	(*LessonStub)(nil),              // 1: kursus.v1.LessonStub
	(*CreateLessonRequest)(nil),     // 2: kursus.v1.CreateLessonRequest
	(*CreateLessonResponse)(nil),    // 3: kursus.v1.CreateLessonResponse
	(*GetLessonRequest)(nil),        // 4: kursus.v1.GetLessonRequest
	(*GetLessonResponse)(nil),       // 5: kursus.v1.GetLessonResponse
	(*ListLessonStubsRequest)(nil),  // 6: kursus.v1.ListLessonStubsRequest
	(*ListLessonStubsResponse)(nil), // 7: kursus.v1.ListLessonStubsResponse
	(*UpdateLessonRequest)(nil),     // 8: kursus.v1.UpdateLessonRequest
	(*UpdateLessonResponse)(nil),    // 9: kursus.v1.UpdateLessonResponse
	(*MoveLessonRequest)(nil),       // 10: kursus.v1.MoveLessonRequest
	(*MoveLessonResponse)(nil),      // 11: kursus.v1.MoveLessonResponse
	(*DeleteLessonRequest)(nil),     // 12: kursus.v1.DeleteLessonRequest
	(*DeleteLessonResponse)(nil),    // 13: kursus.v1.DeleteLessonResponse
	(*timestamppb.Timestamp)(nil),   // 14: google.protobuf.Timestamp
}
var file_kursus_v1_lesson_proto_depIdxs = []int32{
	14, // 0: kursus.v1.Lesson.created_at:type_name -> google.protobuf.Timestamp
	14, // 1: kursus.v1.Lesson.updated_at:type_name -> google.protobuf.Timestamp
	0,  // 2: kursus.v1.CreateLessonResponse.lesson:type_name -> kursus.v1.Lesson
	0,  // 3: kursus.v1.GetLessonResponse.lesson:type_name -> kursus.v1.Lesson
	1,  // 4: kursus.v1.ListLessonStubsResponse.lessons:type_name -> kursus.v1.LessonStub
	0,  // 5: kursus.v1.UpdateLessonResponse.lesson:type_name -> kursus.v1.Lesson
	0,  // 6: kursus.v1.MoveLessonResponse.lesson:type_name -> kursus.v1.Lesson
	2,  // 7: kursus.v1.LessonService.CreateLesson:input_type -> kursus.v1.CreateLessonRequest
	4,  // 8: kursus.v1.LessonService.GetLesson:input_type -> kursus.v1.GetLessonRequest
	6,  // 9: kursus.v1.LessonService.ListLessonStubs:input_type -> kursus.v1.ListLessonStubsRequest
	8,  // 10: kursus.v1.LessonService.UpdateLesson:input_type -> kursus.v1.UpdateLessonRequest
	10, // 11: kursus.v1.LessonService.MoveLesson:input_type -> kursus.v1.MoveLessonRequest
	12, // 12: kursus.v1.LessonService.DeleteLesson:input_type -> kursus.v1.DeleteLessonRequest
	3,  // 13: kursus.v1.LessonService.CreateLesson:output_type -> kursus.v1.CreateLessonResponse
	5,  // 14: kursus.v1.LessonService.GetLesson:output_type -> kursus.v1.GetLessonResponse
	7,  // 15: kursus.v1.LessonService.ListLessonStubs:output_type -> kursus.v1.ListLessonStubsResponse
	9,  // 16: kursus.v1.LessonService.UpdateLesson:output_type -> kursus.v1.UpdateLessonResponse
	11, // 17: kursus.v1.LessonService.MoveLesson:output_type -> kursus.v1.MoveLessonResponse
	13, // 18: kursus.v1.LessonService.DeleteLesson:output_type -> kursus.v1.DeleteLessonResponse
	13, // [13:19] is the sub-list for method output_type
	7,  // [7:13] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_kursus_v1_lesson_proto_init() }
func file_kursus_v1_lesson_proto_init() {
	if File_kursus_v1_lesson_proto != nil {
		return
	}
	file_kursus_v1_lesson_proto_msgTypes[8].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_kursus_v1_lesson_proto_rawDesc), len(file_kursus_v1_lesson_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_kursus_v1_lesson_proto_goTypes,
		DependencyIndexes: file_kursus_v1_lesson_proto_depIdxs,
		MessageInfos:      file_kursus_v1_lesson_proto_msgTypes,
	}.Build()
	File_kursus_v1_lesson_proto = out.File
	file_kursus_v1_lesson_proto_goTypes = nil
	file_kursus_v1_lesson_proto_depIdxs = nil
}
